package auth

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yinyiqing/hotel-backoffice/pkg/constants"
	"github.com/yinyiqing/hotel-backoffice/pkg/serrors"
)

// LoginDTO carries the admin sign-in form. Credentials are verified by the
// backend; this side only checks that both fields are present.
type LoginDTO struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

var loginLabels = map[string]string{
	"username": "用户名",
	"password": "密码",
}

func (d *LoginDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Username = strings.TrimSpace(d.Username)
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), loginLabels), false
}

// ChangePasswordDTO carries the change-password form. Length and
// confirmation rules run locally so no request leaves with a payload the
// backend would reject anyway.
type ChangePasswordDTO struct {
	OldPassword     string `form:"old_password" validate:"required"`
	NewPassword     string `form:"new_password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=NewPassword"`
}

var passwordLabels = map[string]string{
	"old_password":     "原密码",
	"new_password":     "新密码",
	"confirm_password": "确认新密码",
}

func (d *ChangePasswordDTO) Ok() (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), passwordLabels), false
}
