package gallery

import (
	"context"
	"flag"
	"os"
	"strings"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("BPICONS_GALLERY_HTTP_ADDR", "")
	if err := os.Unsetenv("BPICONS_GALLERY_HTTP_ADDR"); err != nil {
		t.Fatalf("unset env: %v", err)
	}

	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8095" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8095")
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("BPICONS_GALLERY_HTTP_ADDR", "0.0.0.0:9000")

	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
}

func TestParseConfigOverrideHTTPAddr(t *testing.T) {
	t.Setenv("BPICONS_GALLERY_HTTP_ADDR", "0.0.0.0:9000")

	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	if _, err := ParseConfig(fs, []string{"-game-addr", "x"}); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestRunRejectsEmptyAddress(t *testing.T) {
	t.Setenv("BPICONS_OTEL_ENDPOINT", "")

	err := Run(context.Background(), Config{})
	if err == nil || !strings.Contains(err.Error(), "init gallery server") {
		t.Fatalf("Run() = %v, want init error", err)
	}
}

func TestParseConfigTimeouts(t *testing.T) {
	t.Setenv("BPICONS_GALLERY_READ_HEADER_TIMEOUT", "2s")
	t.Setenv("BPICONS_GALLERY_SHUTDOWN_TIMEOUT", "10s")

	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-shutdown-timeout", "1s"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.ReadHeaderTimeout != 2*time.Second {
		t.Fatalf("ReadHeaderTimeout = %v, want 2s", cfg.ReadHeaderTimeout)
	}
	if cfg.ShutdownTimeout != time.Second {
		t.Fatalf("ShutdownTimeout = %v, want flag value 1s", cfg.ShutdownTimeout)
	}
}
