package serrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors maps a struct field name to a display message suitable for
// re-rendering next to the form input.
type ValidationErrors map[string]string

// ProcessValidatorErrors flattens go-playground validation errors into
// per-field display messages. labels translates struct field names to the
// labels shown to the user; unknown fields fall back to the field name.
func ProcessValidatorErrors(errs validator.ValidationErrors, labels map[string]string) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, fe := range errs {
		label := fe.Field()
		if l, ok := labels[fe.Field()]; ok {
			label = l
		}
		out[fe.Field()] = messageFor(fe, label)
	}
	return out
}

func messageFor(fe validator.FieldError, label string) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s是必填项", label)
	case "oneof":
		return fmt.Sprintf("%s必须是以下值之一：%s", label, fe.Param())
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s长度至少%s位", label, fe.Param())
		}
		return fmt.Sprintf("%s不能小于%s", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s不能超过%s", label, fe.Param())
	case "email":
		return fmt.Sprintf("%s格式不正确", label)
	case "eqfield":
		return fmt.Sprintf("%s与确认值不匹配", label)
	default:
		return fmt.Sprintf("%s不合法", label)
	}
}
