package mappers

import (
	"github.com/yinyiqing/hotel-backoffice/pkg/crud"
	"github.com/yinyiqing/hotel-backoffice/pkg/format"
	"github.com/yinyiqing/hotel-backoffice/pkg/htmlui"
)

func DepartmentColumns() []crud.Column {
	return []crud.Column{
		{Key: "department_id", Title: "部门编号", Format: func(rec crud.Record) crud.Cell {
			return crud.Cell{Text: rec.Str("department_id"), Strong: true}
		}},
		{Key: "department_name", Title: "部门名称"},
		{Key: "description", Title: "描述", Format: func(rec crud.Record) crud.Cell {
			return crud.Cell{Text: format.Dash(rec.Str("description"))}
		}},
	}
}

func DepartmentsTable(table crud.Table, records []crud.Record) htmlui.TableVM {
	vm := htmlui.TableVM{Empty: "暂无部门数据"}
	vm.Columns = table.Columns
	for i, row := range table.Rows {
		name := records[i].Str("department_name")
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID:    row.ID,
			Cells: row.Cells,
			Actions: []htmlui.ActionVM{
				{Label: "编辑", URL: "/departments/" + row.ID + "/form", Method: "GET"},
				{Label: "删除", URL: "/departments/" + row.ID + "/confirm?label=" + name, Method: "GET", Class: "danger"},
			},
		})
	}
	return vm
}

func DepartmentFormVM(state *crud.FormState, errors map[string]string) *htmlui.FormVM {
	if state == nil {
		return nil
	}
	title := "添加部门"
	readonly := false
	if state.Mode == crud.ModeEdit {
		title = "编辑部门"
		readonly = true
	}
	get := func(key string) string { return state.Fields[key] }
	return &htmlui.FormVM{
		Title:  title,
		Action: "/departments",
		Mode:   state.Mode.String(),
		Fields: []htmlui.Field{
			{Name: "department_id", Label: "部门编号", Type: "text", Value: get("department_id"), Required: true, Readonly: readonly},
			{Name: "department_name", Label: "部门名称", Type: "text", Value: get("department_name"), Required: true},
			{Name: "description", Label: "描述", Type: "textarea", Value: get("description")},
		},
		Errors:   errors,
		CloseURL: "/departments/close",
	}
}
