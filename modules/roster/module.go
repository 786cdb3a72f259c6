package roster

import (
	"embed"

	"github.com/redis/go-redis/v9"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/modules/roster/handlers"
	"github.com/jacksonlee411/safety-console/modules/roster/infrastructure/persistence"
	"github.com/jacksonlee411/safety-console/modules/roster/presentation/controllers"
	"github.com/jacksonlee411/safety-console/modules/roster/services"
	"github.com/jacksonlee411/safety-console/pkg/application"
	"github.com/jacksonlee411/safety-console/pkg/configuration"
)

//go:embed presentation/locales/*.toml
var LocaleFiles embed.FS

//go:embed infrastructure/persistence/schema/*.sql
var MigrationFiles embed.FS

type ModuleOptions struct {
	Configuration *configuration.Configuration
	// Cache overrides the redis client built from REDIS_URL.
	Cache persistence.KeyValueStore
}

func NewModule(opts *ModuleOptions) application.Module {
	if opts == nil {
		opts = &ModuleOptions{}
	}
	return &Module{options: opts}
}

type Module struct {
	options *ModuleOptions
}

func (m *Module) Register(app application.Application) error {
	conf := m.options.Configuration
	if conf == nil {
		conf = configuration.Use()
	}

	app.RegisterLocaleFiles(&LocaleFiles)
	app.Migrations().RegisterSchema(&MigrationFiles)

	var repo roster.Repository = persistence.NewDutyAssignmentRepository()
	if conf.Roster.CacheEnabled {
		store := m.options.Cache
		if store == nil {
			store = redis.NewClient(&redis.Options{Addr: conf.RedisURL})
		}
		repo = persistence.NewCachedAssignmentRepository(repo, store, conf.Roster.CacheTTL, app.Logger())
	}

	app.RegisterServices(
		services.NewRosterService(repo, app.EventPublisher(), app.Logger(), conf.Roster.MaxWeeks),
	)
	app.RegisterControllers(
		controllers.NewRosterAPIController(app),
	)
	handlers.RegisterRosterEventHandlers(app)
	return nil
}

func (m *Module) Name() string {
	return "roster"
}
