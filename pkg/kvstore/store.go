// Package kvstore is the binding-redirection demonstration domain: a
// Store interface with three real implementations (in-memory, SQLite via
// database/sql + mattn/go-sqlite3, Postgres via jackc/pgx/v5). Register
// binds Mem as the default Store and SQLite/Postgres under the named
// bindings "sqlite"/"postgres", so callers pick a backend by binding name
// without importing any driver package themselves; rtconfig.Config only
// supplies the DSNs.
package kvstore

import "context"

// Store is a minimal key-value interface: enough to demonstrate that an
// injected dependency can be swapped by changing a binding, not a single
// line of caller code.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
