package core

import (
	"github.com/yinyiqing/hotel-backoffice/modules/core/presentation/controllers"
	"github.com/yinyiqing/hotel-backoffice/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterControllers(
		controllers.NewAuthController(app),
		controllers.NewDashboardController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "core"
}
