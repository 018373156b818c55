package modules

import (
	"github.com/yinyiqing/hotel-backoffice/modules/analytics"
	"github.com/yinyiqing/hotel-backoffice/modules/core"
	"github.com/yinyiqing/hotel-backoffice/modules/customers"
	"github.com/yinyiqing/hotel-backoffice/modules/employees"
	"github.com/yinyiqing/hotel-backoffice/modules/rooms"
	"github.com/yinyiqing/hotel-backoffice/pkg/application"
)

// BuiltInModules lists every feature slice in registration order. Core goes
// first so the root and login routes win over any later prefix.
func BuiltInModules() []application.Module {
	return []application.Module{
		core.NewModule(),
		employees.NewModule(),
		customers.NewModule(),
		rooms.NewModule(),
		analytics.NewModule(),
	}
}
