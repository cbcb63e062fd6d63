// Package gallery wires the icon gallery command.
package gallery

import (
	"context"
	"flag"
	"fmt"
	"time"

	platformcmd "github.com/louisbranch/bpicons/internal/platform/cmd"
	"github.com/louisbranch/bpicons/internal/services/gallery"
)

// Config holds the gallery command configuration.
type Config struct {
	HTTPAddr          string        `env:"BPICONS_GALLERY_HTTP_ADDR" envDefault:"localhost:8095"`
	ReadHeaderTimeout time.Duration `env:"BPICONS_GALLERY_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"BPICONS_GALLERY_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown limit")
}

// ParseConfig loads env defaults and then flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.LoadConfig(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves the gallery until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	svc := platformcmd.Service{Name: platformcmd.ServiceGallery}
	return platformcmd.Run(ctx, svc, func(ctx context.Context) error {
		server, err := gallery.NewServer(gallery.Config{
			HTTPAddr:          cfg.HTTPAddr,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			ShutdownTimeout:   cfg.ShutdownTimeout,
		})
		if err != nil {
			return fmt.Errorf("init gallery server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve gallery: %w", err)
		}
		return nil
	})
}
