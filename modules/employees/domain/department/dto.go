package department

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yinyiqing/hotel-backoffice/pkg/constants"
	"github.com/yinyiqing/hotel-backoffice/pkg/serrors"
)

type UpsertDTO struct {
	DepartmentID   string `form:"department_id" validate:"required"`
	DepartmentName string `form:"department_name" validate:"required"`
	Description    string `form:"description"`
}

var fieldLabels = map[string]string{
	"department_id":   "部门编号",
	"department_name": "部门名称",
	"description":     "描述",
}

func (d *UpsertDTO) Normalize() {
	d.DepartmentID = strings.TrimSpace(d.DepartmentID)
	d.DepartmentName = strings.TrimSpace(d.DepartmentName)
	d.Description = strings.TrimSpace(d.Description)
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
		"department_id":   d.DepartmentID,
		"department_name": d.DepartmentName,
		"description":     d.Description,
	}
}
