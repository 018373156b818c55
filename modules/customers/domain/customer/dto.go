package customer

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yinyiqing/hotel-backoffice/pkg/constants"
	"github.com/yinyiqing/hotel-backoffice/pkg/serrors"
)

type UpsertDTO struct {
	Name   string `form:"name" validate:"required"`
	Phone  string `form:"phone" validate:"required"`
	IDCard string `form:"id_card" validate:"required"`
}

var fieldLabels = map[string]string{
	"name":    "姓名",
	"phone":   "电话",
	"id_card": "身份证号",
}

func (d *UpsertDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Phone = strings.TrimSpace(d.Phone)
	d.IDCard = strings.TrimSpace(d.IDCard)
}

func (d *UpsertDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), fieldLabels), false
}

func (d *UpsertDTO) Values() map[string]string {
	return map[string]string{
		"name":    d.Name,
		"phone":   d.Phone,
		"id_card": d.IDCard,
	}
}
