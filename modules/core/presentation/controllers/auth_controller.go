package controllers

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/yinyiqing/hotel-backoffice/modules/core/domain/auth"
	"github.com/yinyiqing/hotel-backoffice/pkg/application"
	"github.com/yinyiqing/hotel-backoffice/pkg/backend"
	"github.com/yinyiqing/hotel-backoffice/pkg/composables"
	"github.com/yinyiqing/hotel-backoffice/pkg/configuration"
	"github.com/yinyiqing/hotel-backoffice/pkg/htmlui"
)

type AuthController struct {
	app      application.Application
	renderer *htmlui.Renderer
}

func NewAuthController(app application.Application) application.Controller {
	return &AuthController{
		app:      app,
		renderer: htmlui.NewRenderer(),
	}
}

func (c *AuthController) Key() string {
	return "/login"
}

func (c *AuthController) Register(r *mux.Router) {
	r.HandleFunc("/", c.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", c.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", c.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", c.Logout).Methods(http.MethodGet)
	r.HandleFunc("/change-password", c.PasswordPage).Methods(http.MethodGet)
	r.HandleFunc("/change-password", c.ChangePassword).Methods(http.MethodPost)
}

func (c *AuthController) render(w http.ResponseWriter, page string, data any) {
	if err := c.renderer.Render(w, page, data); err != nil {
		c.app.Logger().WithError(err).Error("render failed")
	}
}

func (c *AuthController) loginPage(username string) htmlui.LoginPage {
	return htmlui.LoginPage{
		Base: htmlui.Base{
			AppTitle: configuration.Use().PageTitle,
			Title:    "登录",
			Notices:  c.app.Notifier().Drain(),
		},
		Username: username,
	}
}

func (c *AuthController) LoginPage(w http.ResponseWriter, r *http.Request) {
	c.render(w, "login", c.loginPage(""))
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&auth.LoginDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs, ok := dto.Ok(); !ok {
		for _, msg := range errs {
			c.app.Notifier().Error(msg)
		}
		c.render(w, "login", c.loginPage(dto.Username))
		return
	}
	msg, err := c.app.Backend().PostForm(r.Context(), "/login", url.Values{
		"username": {dto.Username},
		"password": {dto.Password},
	})
	if err != nil {
		if appMsg, ok := backend.AppMessage(err); ok {
			c.app.Notifier().Error(appMsg)
		} else {
			c.app.Notifier().Error("无法连接服务器，请稍后重试")
		}
		c.render(w, "login", c.loginPage(dto.Username))
		return
	}
	if msg != "" {
		c.app.Notifier().Success(msg)
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.app.Notifier().Success("已退出登录")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (c *AuthController) passwordPage(errs map[string]string) htmlui.PasswordPage {
	return htmlui.PasswordPage{
		Base: htmlui.Base{
			AppTitle: configuration.Use().PageTitle,
			Title:    "修改密码",
			Nav:      htmlui.Navigation("/change-password"),
			Notices:  c.app.Notifier().Drain(),
		},
		Errors: errs,
	}
}

func (c *AuthController) PasswordPage(w http.ResponseWriter, r *http.Request) {
	c.render(w, "password", c.passwordPage(nil))
}

// ChangePassword validates locally first; a form that cannot possibly be
// accepted never produces a backend request.
func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&auth.ChangePasswordDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs, ok := dto.Ok(); !ok {
		c.render(w, "password", c.passwordPage(errs))
		return
	}
	msg, err := c.app.Backend().PostForm(r.Context(), "/change-password", url.Values{
		"currentPassword": {dto.OldPassword},
		"newPassword":     {dto.NewPassword},
		"confirmPassword": {dto.ConfirmPassword},
	})
	if err != nil {
		if appMsg, ok := backend.AppMessage(err); ok {
			c.app.Notifier().Error(appMsg)
		} else {
			c.app.Notifier().Error("无法连接服务器，请稍后重试")
		}
		c.render(w, "password", c.passwordPage(nil))
		return
	}
	if msg == "" {
		msg = "密码修改成功"
	}
	c.app.Notifier().Success(msg)
	http.Redirect(w, r, "/change-password", http.StatusSeeOther)
}
