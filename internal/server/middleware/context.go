package middleware

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"

	"github.com/navigate-zea/navigate/backend/internal/session"
	"github.com/navigate-zea/navigate/backend/pkg/ai"
)

type App struct {
	Session      *session.Session
	AiClient     ai.Client
	S3           *s3.Client
	MasterAPIKey string
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
