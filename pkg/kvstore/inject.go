package kvstore

import (
	"context"

	"github.com/fluxorio/actorcell/pkg/inject"
	"github.com/fluxorio/actorcell/pkg/rtconfig"
)

// Register wires all three Store backends into inj at once: Mem backs the
// default unnamed Store binding, so Store is resolvable with zero external
// services, while SQLite and Postgres are bound under the named bindings
// "sqlite" and "postgres" so callers can reach either one explicitly via
// GetNamed[Store]. Nothing connects eagerly — each backend is a Provide
// constructor behind a lazy singleton, so an unconfigured Postgres DSN only
// fails the call that actually resolves the "postgres" binding.
func Register(inj *inject.Injector, cfg rtconfig.Config) error {
	inject.Provide(inj, func(ctx context.Context, inj *inject.Injector) (*Mem, error) {
		return NewMem(), nil
	})
	inject.Bind[Store, *Mem](inj)

	inject.Provide(inj, func(ctx context.Context, inj *inject.Injector) (*SQLite, error) {
		return OpenSQLite(cfg.Store.SQLiteDSN)
	})
	inject.BindNamed[Store, *SQLite](inj, "sqlite")

	inject.Provide(inj, func(ctx context.Context, inj *inject.Injector) (*Postgres, error) {
		return OpenPostgres(ctx, cfg.Store.PostgresDSN)
	})
	inject.BindNamed[Store, *Postgres](inj, "postgres")

	return nil
}
