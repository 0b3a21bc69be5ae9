package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"parcelrouting/internal/adapters/in/http/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const apiPrefix = "/api/v1/"

var (
	registerSwagger    sync.Once
	registerXMLDecoder sync.Once
)

// NewRouter builds the echo instance serving the REST API, the OpenAPI
// document and the Swagger UI. Requests under /api/v1 are validated against
// the OpenAPI document before they reach the server.
func NewRouter(server *Server, logger *zap.Logger) (*echo.Echo, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}

	validation, err := openAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	swaggerJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding openapi document: %w", err)
	}
	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc(swaggerJSON))
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLogLevel(logger.Level()))
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler(logger.Named("http"))

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger.Named("http")))
	e.Use(validation)

	e.GET("/openapi.yaml", func(ctx echo.Context) error {
		return ctx.Blob(http.StatusOK, "application/yaml", api.RawSpec())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api.RegisterHandlers(e, server)
	return e, nil
}

type swaggerDoc []byte

func (d swaggerDoc) ReadDoc() string { return string(d) }

// openAPIValidator rejects requests under /api/v1 that do not match the
// OpenAPI document. Unknown routes fall through to echo's router.
func openAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	doc.Servers = nil
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building openapi router: %w", err)
	}
	registerXMLDecoder.Do(func() {
		openapi3filter.RegisterBodyDecoder("application/xml", openapi3filter.FileBodyDecoder)
	})

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if !strings.HasPrefix(req.URL.Path, apiPrefix) {
				return next(ctx)
			}

			route, pathParams, err := router.FindRoute(req)
			if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
				return next(ctx)
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return next(ctx)
		}
	}, nil
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				logger.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Debug("request", fields...)
			return nil
		},
	})
}

func echoLogLevel(level zapcore.Level) log.Lvl {
	switch {
	case level <= zapcore.DebugLevel:
		return log.DEBUG
	case level == zapcore.InfoLevel:
		return log.INFO
	case level == zapcore.WarnLevel:
		return log.WARN
	default:
		return log.ERROR
	}
}
