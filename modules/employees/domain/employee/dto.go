package employee

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yinyiqing/hotel-backoffice/pkg/constants"
	"github.com/yinyiqing/hotel-backoffice/pkg/serrors"
)

// UpsertDTO carries the employee form for both create and update. The
// backend assigns employee ids on create, so the id never travels in the
// payload.
type UpsertDTO struct {
	EmployeeName string `form:"employee_name" validate:"required"`
	Gender       string `form:"gender" validate:"required,oneof=男 女"`
	Phone        string `form:"phone"`
	Email        string `form:"email" validate:"omitempty,email"`
	DepartmentID string `form:"department_id"`
	PositionName string `form:"position_name"`
	HireDate     string `form:"hire_date"`
	Status       string `form:"status" validate:"omitempty,oneof=在职 离职"`
	Salary       string `form:"salary" validate:"omitempty,numeric"`
}

var fieldLabels = map[string]string{
	"employee_name": "姓名",
	"gender":        "性别",
	"phone":         "电话",
	"email":         "邮箱",
	"department_id": "部门",
	"position_name": "职位",
	"hire_date":     "入职日期",
	"status":        "状态",
	"salary":        "薪资",
}

func (d *UpsertDTO) Normalize() {
	d.EmployeeName = strings.TrimSpace(d.EmployeeName)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Email = strings.TrimSpace(d.Email)
	d.PositionName = strings.TrimSpace(d.PositionName)
	d.Salary = strings.TrimSpace(d.Salary)
}

func (d *UpsertDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), fieldLabels), false
}

// Values flattens the DTO for transmission; empty strings become explicit
// nulls downstream.
func (d *UpsertDTO) Values() map[string]string {
	return map[string]string{
		"employee_name": d.EmployeeName,
		"gender":        d.Gender,
		"phone":         d.Phone,
		"email":         d.Email,
		"department_id": d.DepartmentID,
		"position_name": d.PositionName,
		"hire_date":     d.HireDate,
		"status":        d.Status,
		"salary":        d.Salary,
	}
}
