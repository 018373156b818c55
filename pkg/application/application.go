package application

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
	"github.com/yinyiqing/hotel-backoffice/pkg/notify"
)

// Controller registers a set of routes under a mux router. Key must be
// unique per controller; registering the same key twice replaces the
// earlier controller.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module is a vertical feature slice. Register wires the module's
// controllers into the application.
type Module interface {
	Name() string
	Register(app Application) error
}

// Application is the shared dependency container handed to every module.
type Application interface {
	Backend() *backend.Client
	Logger() *logrus.Logger
	Notifier() *notify.Flash

	RegisterControllers(controllers ...Controller)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	RegisterModules(modules ...Module) error
}

type ApplicationOptions struct {
	Backend *backend.Client
	Logger  *logrus.Logger
}

func New(opts *ApplicationOptions) Application {
	return &application{
		backend:     opts.Backend,
		logger:      opts.Logger,
		notifier:    notify.NewFlash(opts.Logger),
		controllers: map[string]Controller{},
	}
}

type application struct {
	backend     *backend.Client
	logger      *logrus.Logger
	notifier    *notify.Flash
	controllers map[string]Controller
	order       []string
	middleware  []mux.MiddlewareFunc
}

func (app *application) Backend() *backend.Client {
	return app.backend
}

func (app *application) Logger() *logrus.Logger {
	return app.logger
}

func (app *application) Notifier() *notify.Flash {
	return app.notifier
}

func (app *application) RegisterControllers(controllers ...Controller) {
	for _, c := range controllers {
		if _, ok := app.controllers[c.Key()]; !ok {
			app.order = append(app.order, c.Key())
		}
		app.controllers[c.Key()] = c
	}
}

func (app *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	app.middleware = append(app.middleware, middleware...)
}

func (app *application) Controllers() []Controller {
	controllers := make([]Controller, 0, len(app.controllers))
	for _, key := range app.order {
		controllers = append(controllers, app.controllers[key])
	}
	return controllers
}

func (app *application) Middleware() []mux.MiddlewareFunc {
	return app.middleware
}

func (app *application) RegisterModules(modules ...Module) error {
	for _, m := range modules {
		app.logger.WithField("module", m.Name()).Info("registering module")
		if err := m.Register(app); err != nil {
			return err
		}
	}
	return nil
}
