package authactor

import (
	"context"
	"time"

	"github.com/fluxorio/actorcell/pkg/inject"
)

// TokenIssuer issues JWTs outside of a running Service: its Clock is an
// injected dependency pulled from the container the same way Service's is,
// but issuer is a per-call argument the container has no way to supply —
// two callers asking for different issuers never share a cached value, the
// assisted-instantiation half of this package's demonstration.
type TokenIssuer struct {
	clock    Clock
	secret   []byte
	tokenTTL time.Duration
	issuer   string
}

// NewTokenIssuer builds a fresh TokenIssuer for issuer via inject.Instantiate:
// its Clock and Config come from inj like any other binding, but the result
// itself is never memoized, so a different issuer on the next call always
// gets its own value even though the underlying Clock is shared.
func NewTokenIssuer(ctx context.Context, inj *inject.Injector, issuer string) (*TokenIssuer, error) {
	return inject.Instantiate(ctx, inj, func(ctx context.Context, inj *inject.Injector) (*TokenIssuer, error) {
		clock, err := inject.Get[Clock](ctx, inj)
		if err != nil {
			return nil, err
		}
		cfg, err := inject.Get[Config](ctx, inj)
		if err != nil {
			return nil, err
		}
		return &TokenIssuer{clock: clock, secret: cfg.Secret, tokenTTL: cfg.TokenTTL, issuer: issuer}, nil
	})
}

// Issue signs a token for username under this issuer's configured issuer
// string and clock.
func (t *TokenIssuer) Issue(username string) (string, error) {
	return generateToken(t.clock, t.secret, username, t.issuer, t.tokenTTL)
}
