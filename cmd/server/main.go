package main

import (
	"log"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/yinyiqing/hotel-backoffice/modules"
	"github.com/yinyiqing/hotel-backoffice/pkg/application"
	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
	"github.com/yinyiqing/hotel-backoffice/pkg/configuration"
	"github.com/yinyiqing/hotel-backoffice/pkg/middleware"
	"github.com/yinyiqing/hotel-backoffice/pkg/server"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	app := application.New(&application.ApplicationOptions{
		Backend: backend.NewClient(conf.Backend.BaseURL, conf.Backend.Timeout, logger),
		Logger:  logger,
	})
	app.RegisterMiddleware(middleware.WithLogger(logger))
	if err := app.RegisterModules(modules.BuiltInModules()...); err != nil {
		panic(err)
	}

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "页面不存在", http.StatusNotFound)
	})
	notAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "方法不允许", http.StatusMethodNotAllowed)
	})

	srv := server.NewHTTPServer(app, notFound, notAllowed)
	logger.WithField("address", conf.SocketAddress).Info("server listening")
	if err := srv.Start(conf.SocketAddress); err != nil {
		panic(err)
	}
}
