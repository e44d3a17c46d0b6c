package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/CICEROsandbox/oversetter/docs"
	"github.com/CICEROsandbox/oversetter/internal/handler"
)

func NewRouter(
	translateHandler *handler.TranslateHandler,
	articleHandler *handler.ArticleHandler,
	exportHandler *handler.ExportHandler,
	metaHandler *handler.MetaHandler,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	translateHandler.RegisterRoutes(api)
	articleHandler.RegisterRoutes(api)
	exportHandler.RegisterRoutes(api)
	metaHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
