package customers

import (
	"github.com/yinyiqing/hotel-backoffice/modules/customers/presentation/controllers"
	"github.com/yinyiqing/hotel-backoffice/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterControllers(controllers.NewCustomersController(app))
	return nil
}

func (m *Module) Name() string {
	return "customers"
}
