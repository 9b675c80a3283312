// Command actorceld wires the actor runtime, the dependency-injection
// container, and the ambient observability stack together, registers the
// authactor.Service actor through it, and drives one register/login cycle
// so an operator can see the whole stack cooperate before embedding it in
// a bigger program.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fluxorio/actorcell/pkg/authactor"
	"github.com/fluxorio/actorcell/pkg/inject"
	"github.com/fluxorio/actorcell/pkg/kvstore"
	"github.com/fluxorio/actorcell/pkg/obslog"
	"github.com/fluxorio/actorcell/pkg/obsmetrics"
	"github.com/fluxorio/actorcell/pkg/obstrace"
	"github.com/fluxorio/actorcell/pkg/rtconfig"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"

	"github.com/fluxorio/actorcell/pkg/actor"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	flag.Parse()

	cfg, err := rtconfig.Load(*configPath, "ACTORCELL")
	if err != nil {
		log.Fatalf("actorceld: loading config: %v", err)
	}

	logger := obslog.New()

	reg := prometheus.NewRegistry()
	metrics := obsmetrics.New(cfg.Metrics.Namespace, reg)

	var tracer *obstrace.Tracer
	var shutdownTracer func(context.Context) error
	if cfg.Tracing.Exporter == rtconfig.TracingExporterStdout {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			log.Fatalf("actorceld: creating trace exporter: %v", err)
		}
		tracer, shutdownTracer = obstrace.NewStdout(exporter, cfg.Tracing.ServiceName)
	}
	observers := []actor.DispatchObserver{metrics}
	if tracer != nil {
		observers = append(observers, tracer)
	}
	actor.SetDispatchObserver(actor.CombineObservers(observers...))
	obslog.RegisterPanicObserver(logger)
	if tracer != nil {
		inject.SetResolveObserver(tracer)
	}

	inj := inject.New()
	inject.BindValue(inj, obslog.Logger(logger))
	if err := kvstore.Register(inj, cfg); err != nil {
		log.Fatalf("actorceld: registering store: %v", err)
	}
	authactor.Register(inj, []byte("dev-only-secret-change-me"), cfg.Actor.DefaultKeepAlive)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := inject.Get[authactor.Client](ctx, inj)
	if err != nil {
		log.Fatalf("actorceld: resolving auth client: %v", err)
	}

	token, err := client.Register(ctx, "demo-user", "demo-password")
	if err != nil {
		log.Fatalf("actorceld: register: %v", err)
	}
	logger.Info("demo registration complete", "token_prefix", token[:min(len(token), 16)])

	if _, err := client.Login(ctx, "demo-user", "demo-password"); err != nil {
		log.Fatalf("actorceld: login: %v", err)
	}
	logger.Info("demo login complete")

	if shutdownTracer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Error(err, "shutting down tracer")
		}
	}
}
