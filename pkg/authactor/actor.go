// Package authactor is a registration/login actor: bcrypt for password
// hashing, golang-jwt for issuing bearer tokens, a kvstore.Store for
// credential persistence. It demonstrates the actor core and the
// injection container working together — the service's dependencies
// (store, logger, signing secret) are resolved once through pkg/inject,
// then the service itself runs as a single-mailbox pkg/actor component so
// concurrent registrations against the same username never race.
package authactor

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fluxorio/actorcell/pkg/actor"
	"github.com/fluxorio/actorcell/pkg/kvstore"
	"github.com/fluxorio/actorcell/pkg/obslog"
)

const credentialKeyPrefix = "authactor:credential:"

// Service is the actor state: everything a handler needs to process one
// register or login request. Never touched outside the actor's runner
// goroutine once Start hands out a Handle.
type Service struct {
	store    kvstore.Store
	secret   []byte
	tokenTTL time.Duration
	log      obslog.Logger
	clock    Clock
}

// RegisterParams is the register(username, password) message.
type RegisterParams struct {
	Username string
	Password string
}

// RegisterResult is the register reply: either a token for immediate
// login, or an error the caller should surface (e.g. ErrUsernameTaken).
type RegisterResult struct {
	Token string
	Err   error
}

// LoginParams is the login(username, password) message.
type LoginParams struct {
	Username string
	Password string
}

// LoginResult is the login reply.
type LoginResult struct {
	Token string
	Err   error
}

func (s *Service) handleRegister(ctx context.Context, m RegisterParams) RegisterResult {
	key := credentialKeyPrefix + m.Username
	if _, exists, err := s.store.Get(ctx, key); err != nil {
		return RegisterResult{Err: fmt.Errorf("authactor: checking existing user: %w", err)}
	} else if exists {
		return RegisterResult{Err: ErrUsernameTaken}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResult{Err: fmt.Errorf("authactor: hashing password: %w", err)}
	}
	if err := s.store.Put(ctx, key, string(hash)); err != nil {
		return RegisterResult{Err: fmt.Errorf("authactor: storing credential: %w", err)}
	}

	token, err := generateToken(s.clock, s.secret, m.Username, "", s.tokenTTL)
	if err != nil {
		return RegisterResult{Err: err}
	}
	s.log.Info("user registered", "username", m.Username)
	return RegisterResult{Token: token}
}

func (s *Service) handleLogin(ctx context.Context, m LoginParams) LoginResult {
	key := credentialKeyPrefix + m.Username
	hash, exists, err := s.store.Get(ctx, key)
	if err != nil {
		return LoginResult{Err: fmt.Errorf("authactor: loading credential: %w", err)}
	}
	if !exists {
		return LoginResult{Err: ErrInvalidCredentials}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(m.Password)); err != nil {
		return LoginResult{Err: ErrInvalidCredentials}
	}

	token, err := generateToken(s.clock, s.secret, m.Username, "", s.tokenTTL)
	if err != nil {
		return LoginResult{Err: err}
	}
	s.log.Info("user logged in", "username", m.Username)
	return LoginResult{Token: token}
}

// Client is a pre-bound sender pair for one running Service, handed to
// callers instead of the raw actor.Handle so they never need to know the
// actor's concrete state type.
type Client struct {
	register actor.MessageSender[RegisterParams, RegisterResult]
	login    actor.MessageSender[LoginParams, LoginResult]
}

func (c Client) Register(ctx context.Context, username, password string) (string, error) {
	res, err := c.register.Dispatch(ctx, RegisterParams{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	return res.Token, res.Err
}

func (c Client) Login(ctx context.Context, username, password string) (string, error) {
	res, err := c.login.Dispatch(ctx, LoginParams{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	return res.Token, res.Err
}

// ValidateToken verifies a bearer token issued by this service and returns
// its claims. Stateless, so it doesn't go through the actor mailbox.
func ValidateToken(secret []byte, token string) (*Claims, error) {
	return validateToken(secret, token)
}

// Start runs a new Service actor backed by the system wall clock and
// returns a Client bound to it.
func Start(store kvstore.Store, secret []byte, tokenTTL time.Duration, log obslog.Logger) Client {
	return StartWithClock(store, secret, tokenTTL, log, systemClock{})
}

// StartWithClock is Start with an explicit Clock dependency — the
// #[inject]-style field Register below pulls from the container instead of
// defaulting to the wall clock, and what deterministic-time tests use.
func StartWithClock(store kvstore.Store, secret []byte, tokenTTL time.Duration, log obslog.Logger, clock Clock) Client {
	if log == nil {
		log = obslog.Discard()
	}
	if clock == nil {
		clock = systemClock{}
	}
	h := actor.Start(Service{store: store, secret: secret, tokenTTL: tokenTTL, log: log, clock: clock})
	return Client{
		register: actor.MakeSender(h, (*Service).handleRegister),
		login:    actor.MakeSender(h, (*Service).handleLogin),
	}
}
