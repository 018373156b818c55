package room

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yinyiqing/hotel-backoffice/pkg/constants"
	"github.com/yinyiqing/hotel-backoffice/pkg/serrors"
)

// Statuses the backend assigns. The UI never computes the next status
// itself; it only posts an action and re-reads.
const (
	StatusFree        = "空闲"
	StatusReserved    = "已预订"
	StatusOccupied    = "已入住"
	StatusMaintenance = "维修中"
)

// Actions accepted by the status endpoint.
var Actions = map[string]string{
	"reserve":  "预订",
	"checkin":  "入住",
	"checkout": "退房",
	"cancel":   "取消",
}

type UpsertDTO struct {
	RoomNumber  string `form:"room_number" validate:"required"`
	RoomType    string `form:"room_type" validate:"required"`
	HasWindow   string `form:"has_window"`
	Area        string `form:"area" validate:"omitempty,numeric"`
	Capacity    string `form:"capacity" validate:"omitempty,numeric"`
	Price       string `form:"price" validate:"required,numeric"`
	Description string `form:"description"`
}

var fieldLabels = map[string]string{
	"room_number": "房间号",
	"room_type":   "房型",
	"has_window":  "窗户",
	"area":        "面积",
	"capacity":    "可住人数",
	"price":       "价格",
	"description": "描述",
}

func (d *UpsertDTO) Normalize() {
	d.RoomNumber = strings.TrimSpace(d.RoomNumber)
	d.Price = strings.TrimSpace(d.Price)
	d.Description = strings.TrimSpace(d.Description)
	if d.Area == "" {
		d.Area = "23"
	}
	if d.Capacity == "" {
		d.Capacity = "2"
	}
	if d.HasWindow == "" {
		d.HasWindow = "0"
	}
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
		"room_number": d.RoomNumber,
		"room_type":   d.RoomType,
		"has_window":  d.HasWindow,
		"area":        d.Area,
		"capacity":    d.Capacity,
		"price":       d.Price,
		"description": d.Description,
	}
}
