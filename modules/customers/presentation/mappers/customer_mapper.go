package mappers

import (
	"github.com/yinyiqing/hotel-backoffice/pkg/crud"
	"github.com/yinyiqing/hotel-backoffice/pkg/format"
	"github.com/yinyiqing/hotel-backoffice/pkg/htmlui"
)

func CustomerColumns() []crud.Column {
	return []crud.Column{
		{Key: "id", Title: "编号", Format: func(rec crud.Record) crud.Cell {
			return crud.Cell{Text: rec.Str("id"), Strong: true}
		}},
		{Key: "name", Title: "姓名"},
		{Key: "phone", Title: "电话"},
		{Key: "id_card", Title: "身份证号"},
		{Key: "created_at", Title: "登记日期", Format: func(rec crud.Record) crud.Cell {
			return crud.Cell{Text: format.Date(rec.Str("created_at"))}
		}},
	}
}

func CustomersTable(table crud.Table, records []crud.Record) htmlui.TableVM {
	vm := htmlui.TableVM{Empty: "暂无客户数据"}
	vm.Columns = table.Columns
	for i, row := range table.Rows {
		name := records[i].Str("name")
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID:    row.ID,
			Cells: row.Cells,
			Actions: []htmlui.ActionVM{
				{Label: "编辑", URL: "/customers/" + row.ID + "/form", Method: "GET"},
				{Label: "删除", URL: "/customers/" + row.ID + "/confirm?label=" + name, Method: "GET", Class: "danger"},
			},
		})
	}
	return vm
}

func CustomerFormVM(state *crud.FormState, errors map[string]string) *htmlui.FormVM {
	if state == nil {
		return nil
	}
	title := "添加客户"
	if state.Mode == crud.ModeEdit {
		title = "编辑客户"
	}
	get := func(key string) string { return state.Fields[key] }
	return &htmlui.FormVM{
		Title:  title,
		Action: "/customers",
		Mode:   state.Mode.String(),
		Fields: []htmlui.Field{
			{Name: "name", Label: "姓名", Type: "text", Value: get("name"), Required: true},
			{Name: "phone", Label: "电话", Type: "text", Value: get("phone"), Required: true},
			{Name: "id_card", Label: "身份证号", Type: "text", Value: get("id_card"), Required: true},
		},
		Errors:   errors,
		CloseURL: "/customers/close",
	}
}
