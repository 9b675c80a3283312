// Package rtconfig loads runtime tunables for the actor/injector stack
// from YAML, with environment variable overrides layered on top.
package rtconfig

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TracingExporter names the span exporter to use. cmd/actorceld acts only
// on TracingExporterStdout; for any other value, TracingExporterJaeger
// included, it installs no tracer.
type TracingExporter string

const (
	TracingExporterNone   TracingExporter = "none"
	TracingExporterStdout TracingExporter = "stdout"
	TracingExporterJaeger TracingExporter = "jaeger"
)

// Config is the full set of runtime tunables. Zero-value struct fields are
// filled in by Defaults, then overridden by file contents, then by
// environment variables, in that order.
type Config struct {
	Metrics struct {
		Namespace string `yaml:"namespace"`
	} `yaml:"metrics"`

	Tracing struct {
		Exporter       TracingExporter `yaml:"exporter"`
		ServiceName    string          `yaml:"service_name"`
		JaegerEndpoint string          `yaml:"jaeger_endpoint"`
	} `yaml:"tracing"`

	Actor struct {
		DefaultKeepAlive time.Duration `yaml:"default_keep_alive"`
	} `yaml:"actor"`

	Store struct {
		SQLiteDSN   string `yaml:"sqlite_dsn"`
		PostgresDSN string `yaml:"postgres_dsn"`
	} `yaml:"store"`
}

// Defaults returns a Config populated with sane defaults for local
// development.
func Defaults() Config {
	var c Config
	c.Metrics.Namespace = "actorcell"
	c.Tracing.Exporter = TracingExporterStdout
	c.Tracing.ServiceName = "actorcell"
	c.Actor.DefaultKeepAlive = 30 * time.Second
	c.Store.SQLiteDSN = ":memory:"
	return c
}

// Load reads a YAML file into a Config seeded with Defaults, then applies
// environment variable overrides under prefix (default "ACTORCELL").
func Load(path string, prefix string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("rtconfig: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("rtconfig: parsing %s: %w", path, err)
		}
	}
	if prefix == "" {
		prefix = "ACTORCELL"
	}
	if err := applyEnvOverrides(prefix, reflect.ValueOf(&cfg).Elem()); err != nil {
		return cfg, fmt.Errorf("rtconfig: applying env overrides: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides walks cfg's fields, setting any whose PREFIX_FIELD (or
// PREFIX_PARENT_FIELD for nested structs) environment variable is set.
func applyEnvOverrides(prefix string, val reflect.Value) error {
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		name := typ.Field(i).Name
		envKey := strings.ToUpper(prefix + "_" + name)

		if field.Kind() == reflect.Struct {
			if err := applyEnvOverrides(envKey, field); err != nil {
				return err
			}
			continue
		}

		raw, ok := os.LookupEnv(envKey)
		if !ok {
			continue
		}
		if err := setField(field, raw); err != nil {
			return fmt.Errorf("%s: %w", envKey, err)
		}
	}
	return nil
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return err
			}
			field.SetInt(int64(d))
			return nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}
