package server

import (
	"github.com/labstack/echo/v4"
)

// Controller is an interface implemented by a REST controller
type Controller interface {
	// Register is the method called by the router to let the controller register its methods.
	Register(router *Router)
}

type Router struct {
	*echo.Echo
}

func NewRouter() *Router {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Router{Echo: e}
}

// Register registers controller's endpoints
func (router *Router) Register(controllers ...Controller) {
	for _, controller := range controllers {
		controller.Register(router)
	}
}
