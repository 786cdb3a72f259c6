package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	"golang.org/x/text/language"

	"github.com/jacksonlee411/safety-console/pkg/application"
	"github.com/jacksonlee411/safety-console/pkg/composables"
	"github.com/jacksonlee411/safety-console/pkg/configuration"
	"github.com/jacksonlee411/safety-console/pkg/constants"
	"github.com/jacksonlee411/safety-console/pkg/httpapi"
	"github.com/jacksonlee411/safety-console/pkg/middleware"
	"github.com/jacksonlee411/safety-console/pkg/routing"
	"github.com/jacksonlee411/safety-console/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	conf := options.Configuration

	rules, err := routing.LoadRules(conf.RoutingRulesPath)
	if err != nil {
		return nil, err
	}
	opsPaths := append(routing.NewClassifier(rules).Prefixes(routing.RouteClassOps), conf.Prometheus.Path)

	loggerOpts := middleware.DefaultLoggerOptions()
	loggerOpts.Configuration = conf

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger, loggerOpts), // creates the root span for each request
		middleware.OpsGuard(conf, opsPaths...),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.Cors(conf.CorsOrigins...),
	}

	if conf.RateLimit.Enabled {
		var store limiter.Store

		switch conf.RateLimit.Storage {
		case "redis":
			store, err = middleware.NewRedisStore(conf.RateLimit.RedisURL)
			if err != nil {
				options.Logger.WithError(err).Warn("Failed to create Redis store for rate limiting, falling back to memory")
				store = middleware.NewMemoryStore()
			}
		default:
			store = middleware.NewMemoryStore()
		}

		middlewares = append(middlewares, middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerPeriod: conf.RateLimit.GlobalRPS,
			Store:             store,
		}))
	}

	defaultLocale, err := language.Parse(conf.Roster.DefaultLocale)
	if err != nil {
		defaultLocale = language.English
	}
	middlewares = append(middlewares, middleware.ProvideLocalizer(app, defaultLocale))

	app.RegisterMiddleware(middlewares...)

	return server.NewHTTPServer(app, http.HandlerFunc(notFound), http.HandlerFunc(methodNotAllowed)), nil
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "route not found", requestMeta(r))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", requestMeta(r))
}

func requestMeta(r *http.Request) map[string]string {
	meta := map[string]string{"path": r.URL.Path}
	if id := composables.UseRequestID(r.Context()); id != "" {
		meta["request_id"] = id
	}
	return meta
}
