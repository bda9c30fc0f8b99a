package server

import (
	"github.com/hostinfo/hostwiki/internal/errors"
	"github.com/hostinfo/hostwiki/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func Logger(logger log.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogError:    true,
		HandleError: true, // forwards error to the global error handler, so it can decide appropriate status code
		LogValuesFunc: func(_ echo.Context, req middleware.RequestLoggerValues) error {
			logger := logger.WithFields(log.Fields{
				log.FieldKeyMethod: req.Method,
				log.FieldKeyURL:    req.URI,
				log.FieldKeyStatus: req.Status,
			})

			if req.Error != nil {
				logger.Errorf("Render server was unable to process the received request, %s", req.Error.Error())
			} else {
				logger.Tracef("Render server received request")
			}

			return nil
		},
	})
}

func Recover(logger log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) (er error) {
			defer errors.Recover(func(err error) {
				logger.Debug(errors.ErrorStack(err))
				er = err
			})

			return next(ctx)
		}
	}
}
