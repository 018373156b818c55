package mappers

import (
	"github.com/yinyiqing/hotel-backoffice/modules/rooms/domain/room"
	"github.com/yinyiqing/hotel-backoffice/pkg/crud"
	"github.com/yinyiqing/hotel-backoffice/pkg/format"
	"github.com/yinyiqing/hotel-backoffice/pkg/htmlui"
)

func statusBadge(status string) string {
	switch status {
	case room.StatusReserved:
		return "reserved"
	case room.StatusOccupied:
		return "occupied"
	case room.StatusMaintenance:
		return "maintenance"
	default:
		return "free"
	}
}

func RoomColumns() []crud.Column {
	return []crud.Column{
		{Key: "room_number", Title: "房间号", Format: func(rec crud.Record) crud.Cell {
			return crud.Cell{Text: rec.Str("room_number"), Strong: true}
		}},
		{Key: "room_type", Title: "房型"},
		{Key: "status", Title: "状态", Format: func(rec crud.Record) crud.Cell {
			status := rec.Str("status")
			if status == "" {
				status = room.StatusFree
			}
			return crud.Cell{Text: status, Badge: statusBadge(status)}
		}},
		{Key: "has_window", Title: "窗户", Format: func(rec crud.Record) crud.Cell {
			if rec.Bool("has_window") {
				return crud.Cell{Text: "有窗"}
			}
			return crud.Cell{Text: "无"}
		}},
		{Key: "area", Title: "面积", Format: func(rec crud.Record) crud.Cell {
			area := rec.Str("area")
			if area == "" {
				area = "23"
			}
			return crud.Cell{Text: area + " m²"}
		}},
		{Key: "capacity", Title: "可住人数", Format: func(rec crud.Record) crud.Cell {
			capacity := rec.Str("capacity")
			if capacity == "" {
				capacity = "2"
			}
			return crud.Cell{Text: capacity + " 人"}
		}},
		{Key: "price", Title: "价格", Format: func(rec crud.Record) crud.Cell {
			price, ok := rec.Float("price")
			if !ok {
				return crud.Cell{Text: "-"}
			}
			return crud.Cell{Text: format.Yuan(price)}
		}},
	}
}

// rowActions mirrors the per-status button sets of the room list.
func rowActions(rec crud.Record) []htmlui.ActionVM {
	num := rec.Str("room_number")
	statusURL := func(action string) htmlui.ActionVM {
		return htmlui.ActionVM{
			Label:  room.Actions[action],
			URL:    "/rooms/" + num + "/status?action=" + action,
			Method: "POST",
		}
	}
	edit := htmlui.ActionVM{Label: "编辑", URL: "/rooms/" + num + "/form", Method: "GET"}
	del := htmlui.ActionVM{Label: "删除", URL: "/rooms/" + num + "/confirm?label=" + num, Method: "GET", Class: "danger"}

	switch rec.Str("status") {
	case room.StatusOccupied:
		return []htmlui.ActionVM{statusURL("checkout"), edit}
	case room.StatusReserved:
		return []htmlui.ActionVM{statusURL("checkin"), statusURL("cancel")}
	default:
		return []htmlui.ActionVM{statusURL("reserve"), statusURL("checkin"), edit, del}
	}
}

func RoomsTable(table crud.Table, records []crud.Record) htmlui.TableVM {
	vm := htmlui.TableVM{Empty: "暂无房间数据"}
	vm.Columns = table.Columns
	for i, row := range table.Rows {
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID:      row.ID,
			Cells:   row.Cells,
			Actions: rowActions(records[i]),
		})
	}
	return vm
}

func RoomFormVM(state *crud.FormState, errors map[string]string) *htmlui.FormVM {
	if state == nil {
		return nil
	}
	title := "添加房间"
	numberReadonly := false
	if state.Mode == crud.ModeEdit {
		title = "编辑房间"
		numberReadonly = true
	}
	get := func(key string) string { return state.Fields[key] }

	windowOptions := []htmlui.Option{
		{Value: "0", Label: "无窗", Selected: get("has_window") != "1"},
		{Value: "1", Label: "有窗", Selected: get("has_window") == "1"},
	}
	typeOptions := make([]htmlui.Option, 0, 3)
	for _, t := range []string{"单人房", "双人房", "豪华大床房"} {
		typeOptions = append(typeOptions, htmlui.Option{Value: t, Label: t, Selected: t == get("room_type")})
	}

	return &htmlui.FormVM{
		Title:  title,
		Action: "/rooms",
		Mode:   state.Mode.String(),
		Fields: []htmlui.Field{
			{Name: "room_number", Label: "房间号", Type: "text", Value: get("room_number"), Required: true, Readonly: numberReadonly},
			{Name: "room_type", Label: "房型", Type: "select", Options: typeOptions, Required: true},
			{Name: "has_window", Label: "窗户", Type: "select", Options: windowOptions},
			{Name: "area", Label: "面积 (m²)", Type: "number", Value: get("area"), Min: "1"},
			{Name: "capacity", Label: "可住人数", Type: "number", Value: get("capacity"), Min: "1"},
			{Name: "price", Label: "价格 (元)", Type: "number", Value: get("price"), Required: true, Min: "0", Step: "0.01"},
			{Name: "description", Label: "描述", Type: "textarea", Value: get("description")},
		},
		Errors:   errors,
		CloseURL: "/rooms/close",
	}
}
