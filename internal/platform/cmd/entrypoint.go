// Package cmd holds the startup plumbing shared by long-running commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/bpicons/internal/platform/config"
	"github.com/louisbranch/bpicons/internal/platform/otel"
)

const defaultTelemetryShutdown = 5 * time.Second

// ServiceGallery names the icon gallery in telemetry and logs.
const ServiceGallery = "gallery"

// LoadConfig fills cfg from the environment and then from args. bind
// registers the flags on fs after the environment is read, so flag defaults
// show the environment values.
func LoadConfig[T any](cfg *T, fs *flag.FlagSet, args []string, bind func(*flag.FlagSet, *T)) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag set is required")
	}
	if err := config.ParseEnv(cfg); err != nil {
		return err
	}
	if bind != nil {
		bind(fs, cfg)
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// Service describes a long-running command.
type Service struct {
	Name string
	// TelemetryShutdown bounds the final span flush. Zero uses five seconds.
	TelemetryShutdown time.Duration
}

// Run installs tracing for svc, calls fn and flushes spans once fn returns.
func Run(ctx context.Context, svc Service, fn func(context.Context) error) error {
	name := strings.TrimSpace(svc.Name)
	if name == "" {
		return errors.New("service name is required")
	}
	if fn == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	telemetry, err := otel.LoadConfig()
	if err != nil {
		return err
	}
	shutdown, err := otel.Setup(ctx, name, telemetry)
	if err != nil {
		return err
	}
	if telemetry.Active() {
		log.Printf("%s tracing to %s", name, telemetry.Endpoint)
	}
	defer func() {
		timeout := svc.TelemetryShutdown
		if timeout <= 0 {
			timeout = defaultTelemetryShutdown
		}
		flushCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("%s otel shutdown: %v", name, err)
		}
	}()
	return fn(ctx)
}
