package otel

import (
	"context"
	"testing"

	"github.com/louisbranch/bpicons/internal/platform/config"
)

func loadFrom(t *testing.T, environment map[string]string) Config {
	t.Helper()
	var cfg Config
	if err := config.ParseEnvFrom(&cfg, environment); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	return cfg
}

func TestConfigDefaults(t *testing.T) {
	cfg := loadFrom(t, nil)
	if !cfg.Enabled {
		t.Fatal("Enabled = false, want true by default")
	}
	if cfg.SampleRatio != 1 {
		t.Fatalf("SampleRatio = %v, want 1", cfg.SampleRatio)
	}
	if cfg.Active() {
		t.Fatal("Active() = true without an endpoint")
	}
}

func TestConfigActive(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{name: "no endpoint", env: map[string]string{}, want: false},
		{name: "blank endpoint", env: map[string]string{EnvEndpoint: "  "}, want: false},
		{name: "endpoint", env: map[string]string{EnvEndpoint: "http://localhost:4318"}, want: true},
		{name: "disabled", env: map[string]string{EnvEndpoint: "http://localhost:4318", EnvEnabled: "FALSE"}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := loadFrom(t, tc.env).Active(); got != tc.want {
				t.Fatalf("Active() = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestConfigRejectsBadRatio(t *testing.T) {
	var cfg Config
	if err := config.ParseEnvFrom(&cfg, map[string]string{EnvSampleRatio: "half"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSamplerByRatio(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{ratio: 1, want: alwaysOn},
		{ratio: 2, want: alwaysOn},
		{ratio: 0, want: alwaysOff},
		{ratio: -1, want: alwaysOff},
	}
	for _, tc := range tests {
		if got := (Config{SampleRatio: tc.ratio}).sampler().Description(); got != tc.want {
			t.Errorf("ratio %v: sampler = %q, want %q", tc.ratio, got, tc.want)
		}
	}
	if got := (Config{SampleRatio: 0.5}).sampler().Description(); got == alwaysOn || got == alwaysOff {
		t.Errorf("ratio 0.5: sampler = %q, want a ratio sampler", got)
	}
}

const (
	alwaysOn  = "AlwaysOnSampler"
	alwaysOff = "AlwaysOffSampler"
)

func TestSetupNoopWhenInactive(t *testing.T) {
	shutdown, err := Setup(context.Background(), "gallery-test", Config{Enabled: false, Endpoint: "http://localhost:4318"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupCreatesProviderWhenActive(t *testing.T) {
	// Non-routable address so no export happens.
	cfg := Config{Enabled: true, Endpoint: "http://192.0.2.1:4318", SampleRatio: 1}
	shutdown, err := Setup(context.Background(), "gallery-test", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
