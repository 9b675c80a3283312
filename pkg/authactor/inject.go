package authactor

import (
	"context"
	"time"

	"github.com/fluxorio/actorcell/pkg/inject"
	"github.com/fluxorio/actorcell/pkg/kvstore"
	"github.com/fluxorio/actorcell/pkg/obslog"
)

// Config is the bit of setup Client's constructor needs that isn't itself
// resolved from the container: the signing secret and token lifetime.
// Bound as a value so Register can pull it back out via Get.
type Config struct {
	Secret   []byte
	TokenTTL time.Duration
}

// Register binds a Client singleton built from the container's Store,
// Clock, and Logger bindings plus secret/ttl. A CircularDependencyError is
// impossible here since Client depends only on leaf bindings (Store, Clock,
// Logger, Config), never on itself.
func Register(inj *inject.Injector, secret []byte, ttl time.Duration) {
	inject.BindValue(inj, Config{Secret: secret, TokenTTL: ttl})
	inject.Provide(inj, func(ctx context.Context, inj *inject.Injector) (*systemClock, error) {
		return &systemClock{}, nil
	})
	inject.Bind[Clock, *systemClock](inj)
	inject.Provide(inj, func(ctx context.Context, inj *inject.Injector) (Client, error) {
		store, err := inject.Get[kvstore.Store](ctx, inj)
		if err != nil {
			return Client{}, err
		}
		cfg, err := inject.Get[Config](ctx, inj)
		if err != nil {
			return Client{}, err
		}
		clock, err := inject.Get[Clock](ctx, inj)
		if err != nil {
			return Client{}, err
		}
		log, err := inject.Get[obslog.Logger](ctx, inj)
		if err != nil {
			log = obslog.Discard()
		}
		return StartWithClock(store, cfg.Secret, cfg.TokenTTL, log, clock), nil
	})
}
