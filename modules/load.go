package modules

import (
	"github.com/jacksonlee411/safety-console/modules/roster"
	"github.com/jacksonlee411/safety-console/modules/roster/infrastructure/persistence"
	"github.com/jacksonlee411/safety-console/pkg/application"
	"github.com/jacksonlee411/safety-console/pkg/configuration"
)

// BuiltInModules returns the modules shipped with the console. cache may be
// nil, in which case the roster module dials REDIS_URL when caching is on.
func BuiltInModules(conf *configuration.Configuration, cache persistence.KeyValueStore) []application.Module {
	return []application.Module{
		roster.NewModule(&roster.ModuleOptions{
			Configuration: conf,
			Cache:         cache,
		}),
	}
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
