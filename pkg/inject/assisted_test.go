package inject

import (
	"context"
	"testing"
)

type Request struct {
	db        *Database
	requestID string
}

func newRequest(ctx context.Context, inj *Injector, requestID string) (*Request, error) {
	db, err := Get[*Database](ctx, inj)
	if err != nil {
		return nil, err
	}
	return &Request{db: db, requestID: requestID}, nil
}

func TestInstantiateBuildsFreshValueEveryCall(t *testing.T) {
	inj := New()
	Provide(inj, func(ctx context.Context, inj *Injector) (*Database, error) {
		return &Database{id: 1}, nil
	})

	r1, err := Instantiate(context.Background(), inj, func(ctx context.Context, inj *Injector) (*Request, error) {
		return newRequest(ctx, inj, "req-1")
	})
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}
	r2, err := Instantiate(context.Background(), inj, func(ctx context.Context, inj *Injector) (*Request, error) {
		return newRequest(ctx, inj, "req-2")
	})
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}

	if r1 == r2 {
		t.Fatal("Instantiate() returned the same instance twice")
	}
	if r1.db != r2.db {
		t.Fatal("assisted instances should still share the injected singleton")
	}
	if r1.requestID == r2.requestID {
		t.Fatal("per-call argument did not vary between calls")
	}
}
