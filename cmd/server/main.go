package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/jacksonlee411/safety-console/internal/server"
	"github.com/jacksonlee411/safety-console/modules"
	"github.com/jacksonlee411/safety-console/modules/roster/infrastructure/persistence"
	"github.com/jacksonlee411/safety-console/pkg/application"
	"github.com/jacksonlee411/safety-console/pkg/configuration"
	"github.com/jacksonlee411/safety-console/pkg/eventbus"
	"github.com/jacksonlee411/safety-console/pkg/logging"
	"github.com/jacksonlee411/safety-console/pkg/metrics"
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
	defer conf.Unload()
	logger := conf.Logger()

	if conf.OpenTelemetry.Enabled {
		tracingCleanup := logging.SetupTracing(
			context.Background(),
			conf.OpenTelemetry.ServiceName,
			conf.OpenTelemetry.TempoURL,
		)
		defer tracingCleanup()
		logger.Info("OpenTelemetry tracing enabled, exporting to Tempo at " + conf.OpenTelemetry.TempoURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		panic(err)
	}
	defer pool.Close()

	var cache persistence.KeyValueStore
	checks := map[string]server.HealthCheck{
		"database": pool.Ping,
	}
	if conf.Roster.CacheEnabled {
		client := redis.NewClient(&redis.Options{Addr: conf.RedisURL})
		defer client.Close()
		cache = client
		checks["cache"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
	}

	app := application.New(&application.ApplicationOptions{
		Pool:               pool,
		Bundle:             application.LoadBundle(),
		EventBus:           eventbus.NewEventPublisher(logger),
		Logger:             logger,
		SupportedLanguages: conf.SupportedLanguages,
	})
	if err := modules.Load(app, modules.BuiltInModules(conf, cache)...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	if conf.Roster.AutoMigrate {
		migrateCtx, migrateCancel := context.WithTimeout(context.Background(), time.Minute)
		err := app.Migrations().Run(migrateCtx)
		migrateCancel()
		if err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}
	}

	app.RegisterControllers(server.NewHealthController(checks))
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	options := &server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Pool:          pool,
	}
	serverInstance, err := server.Default(options)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(runCtx, conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
