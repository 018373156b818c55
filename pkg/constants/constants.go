package constants

import (
	"reflect"
	"strings"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	LoggerKey       ContextKey = "logger"
	RequestStartKey ContextKey = "request-start"
)

var (
	Validate    = validator.New(validator.WithRequiredStructEnabled())
	FormDecoder = form.NewDecoder()
)

func init() {
	// Validation errors key by the form input name so they line up with
	// the rendered fields.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}
