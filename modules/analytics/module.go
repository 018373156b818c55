package analytics

import (
	"github.com/yinyiqing/hotel-backoffice/modules/analytics/presentation/controllers"
	"github.com/yinyiqing/hotel-backoffice/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterControllers(controllers.NewAnalyticsController(app))
	return nil
}

func (m *Module) Name() string {
	return "analytics"
}
