package mappers

import (
	"fmt"

	"github.com/yinyiqing/hotel-backoffice/modules/employees/presentation/viewmodels"
	"github.com/yinyiqing/hotel-backoffice/pkg/crud"
	"github.com/yinyiqing/hotel-backoffice/pkg/format"
	"github.com/yinyiqing/hotel-backoffice/pkg/htmlui"
)

// EmployeeColumns renders the list table. Salary stays off the table by
// design of the original page; it is editable through the form only.
func EmployeeColumns() []crud.Column {
	return []crud.Column{
		{Key: "employee_id", Title: "工号", Format: func(rec crud.Record) crud.Cell {
			return crud.Cell{Text: rec.Str("employee_id"), Strong: true}
		}},
		{Key: "employee_name", Title: "姓名"},
		{Key: "gender", Title: "性别"},
		{Key: "phone", Title: "电话"},
		{Key: "department_name", Title: "部门"},
		{Key: "position_name", Title: "职位"},
		{Key: "hire_date", Title: "入职日期", Format: func(rec crud.Record) crud.Cell {
			return crud.Cell{Text: format.Date(rec.Str("hire_date"))}
		}},
		{Key: "status", Title: "状态", Format: func(rec crud.Record) crud.Cell {
			status := rec.Str("status")
			badge := "inactive"
			if status == "在职" {
				badge = "active"
			}
			return crud.Cell{Text: format.Dash(status), Badge: badge}
		}},
	}
}

// EmployeesTable decorates the rendered table with per-row actions.
func EmployeesTable(table crud.Table, records []crud.Record) htmlui.TableVM {
	vm := htmlui.TableVM{Empty: "暂无员工数据"}
	vm.Columns = table.Columns
	for i, row := range table.Rows {
		name := records[i].Str("employee_name")
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID:    row.ID,
			Cells: row.Cells,
			Actions: []htmlui.ActionVM{
				{Label: "编辑", URL: "/employees/" + row.ID + "/form", Method: "GET"},
				{Label: "删除", URL: "/employees/" + row.ID + "/confirm?label=" + name, Method: "GET", Class: "danger"},
			},
		})
	}
	return vm
}

// EmployeeFormVM builds the create/edit modal. departments feeds the
// department select.
func EmployeeFormVM(state *crud.FormState, errors map[string]string, departments []crud.Record) *htmlui.FormVM {
	if state == nil {
		return nil
	}
	title := "添加员工"
	if state.Mode == crud.ModeEdit {
		title = "编辑员工"
	}
	get := func(key string) string { return state.Fields[key] }

	deptOptions := []htmlui.Option{{Value: "", Label: "未分配"}}
	for _, d := range departments {
		deptOptions = append(deptOptions, htmlui.Option{
			Value:    d.Str("department_id"),
			Label:    d.Str("department_name"),
			Selected: d.Str("department_id") == get("department_id"),
		})
	}

	return &htmlui.FormVM{
		Title:  title,
		Action: "/employees",
		Mode:   state.Mode.String(),
		Fields: []htmlui.Field{
			{Name: "employee_name", Label: "姓名", Type: "text", Value: get("employee_name"), Required: true},
			{Name: "gender", Label: "性别", Type: "select", Options: selectedOptions([]string{"男", "女"}, get("gender")), Required: true},
			{Name: "phone", Label: "电话", Type: "text", Value: get("phone")},
			{Name: "email", Label: "邮箱", Type: "text", Value: get("email")},
			{Name: "department_id", Label: "部门", Type: "select", Options: deptOptions},
			{Name: "position_name", Label: "职位", Type: "text", Value: get("position_name")},
			{Name: "hire_date", Label: "入职日期", Type: "date", Value: get("hire_date")},
			{Name: "status", Label: "状态", Type: "select", Options: selectedOptions([]string{"在职", "离职"}, get("status"))},
			{Name: "salary", Label: "薪资", Type: "number", Value: get("salary"), Min: "0", Step: "0.01"},
		},
		Errors:   errors,
		CloseURL: "/employees/close",
	}
}

// StatisticsCards turns the statistics payload into the summary card row.
func StatisticsCards(stats *viewmodels.EmployeeStatistics) []htmlui.StatCard {
	return []htmlui.StatCard{
		{Label: "员工总数", Value: fmt.Sprintf("%d", stats.Total)},
		{Label: "在职员工", Value: fmt.Sprintf("%d", stats.Active), Bar: format.Percent(float64(stats.Active), float64(stats.Total))},
		{Label: "离职员工", Value: fmt.Sprintf("%d", stats.Terminated)},
		{Label: "在职率", Value: fmt.Sprintf("%.1f%%", stats.ActiveRate)},
	}
}

// DepartmentBars renders headcount per department with bar widths scaled
// to the largest department.
func DepartmentBars(stats *viewmodels.EmployeeStatistics) []htmlui.StatCard {
	max := 0
	for _, d := range stats.ByDepartment {
		if d.Count > max {
			max = d.Count
		}
	}
	cards := make([]htmlui.StatCard, 0, len(stats.ByDepartment))
	for _, d := range stats.ByDepartment {
		cards = append(cards, htmlui.StatCard{
			Label: d.DepartmentName,
			Value: fmt.Sprintf("%d人", d.Count),
			Bar:   format.Percent(float64(d.Count), float64(max)),
		})
	}
	return cards
}

func selectedOptions(values []string, current string) []htmlui.Option {
	opts := make([]htmlui.Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, htmlui.Option{Value: v, Label: v, Selected: v == current})
	}
	return opts
}
