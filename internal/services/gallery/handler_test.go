package gallery

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/bpicons/internal/platform/icons"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	server, err := NewServer(Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return server.Handler()
}

func get(t *testing.T, h http.Handler, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for key, val := range header {
		req.Header.Set(key, val)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleIndexListsEveryIcon(t *testing.T) {
	rec := get(t, newTestHandler(t), "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != htmlContentType {
		t.Fatalf("content type = %q, want %q", got, htmlContentType)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Icon gallery</title>") {
		t.Fatalf("missing english title: %s", body)
	}
	for _, name := range icons.Names() {
		if name == icons.Blank {
			if strings.Contains(body, `data-icon="Blank"`) {
				t.Error("gallery lists the blank icon")
			}
			continue
		}
		if !strings.Contains(body, `href="/icons/`+name.String()+`"`) {
			t.Errorf("gallery missing link for %s", name)
		}
		if n := strings.Count(body, `data-icon="`+name.String()+`"`); n < 2 {
			t.Errorf("gallery renders %s %d times, want both grids", name, n)
		}
	}
	if !strings.Contains(body, `viewBox="0 0 20 20"`) {
		t.Error("gallery missing 20px grid icons")
	}
}

func TestHandleIndexLocalizes(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/", map[string]string{"Accept-Language": "pt-BR,pt;q=0.9"})
	body := rec.Body.String()
	if !strings.Contains(body, `<html lang="pt-BR">`) {
		t.Fatalf("expected pt-BR document: %s", body[:200])
	}
	if !strings.Contains(body, "Galeria de ícones") {
		t.Fatal("expected translated title")
	}

	rec = get(t, h, "/?lang=en-US", map[string]string{"Accept-Language": "pt-BR"})
	if !strings.Contains(rec.Body.String(), "<title>Icon gallery</title>") {
		t.Fatal("lang query parameter should win over Accept-Language")
	}
}

func TestHandleIcon(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		want       []string
		notWant    []string
	}{
		{
			name:       "defaults",
			target:     "/icons/Print",
			wantStatus: http.StatusOK,
			want:       []string{`<span class="bp3-icon">`, `data-icon="Print" width="16" height="16" viewBox="0 0 16 16"`, `<desc>Print</desc>`},
			notWant:    []string{"fill=", "onclick"},
		},
		{
			name:       "scaled",
			target:     "/icons/Print?size=32",
			wantStatus: http.StatusOK,
			want:       []string{`width="32" height="32" viewBox="0 0 20 20"`},
		},
		{
			name:       "color and title",
			target:     "/icons/Print?color=red&title=Print+job",
			wantStatus: http.StatusOK,
			want:       []string{`<svg fill="red"`, `<desc>Print job</desc>`},
		},
		{
			name:       "class and intent",
			target:     "/icons/Print?class=mr-2&intent=danger",
			wantStatus: http.StatusOK,
			want:       []string{`class="bp3-icon mr-2 bp3-intent-danger"`},
		},
		{
			name:       "empty color is kept",
			target:     "/icons/Tick?color=",
			wantStatus: http.StatusOK,
			want:       []string{`<svg fill=""`},
		},
		{
			name:       "unknown icon",
			target:     "/icons/print",
			wantStatus: http.StatusNotFound,
			want:       []string{"unknown icon"},
		},
		{
			name:       "bad size",
			target:     "/icons/Print?size=big",
			wantStatus: http.StatusBadRequest,
			want:       []string{"invalid icon size"},
		},
		{
			name:       "zero size",
			target:     "/icons/Print?size=0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad intent",
			target:     "/icons/Print?intent=loud",
			wantStatus: http.StatusBadRequest,
			want:       []string{"invalid intent"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, h, tc.target, nil)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			body := rec.Body.String()
			for _, want := range tc.want {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q: %s", want, body)
				}
			}
			for _, notWant := range tc.notWant {
				if strings.Contains(body, notWant) {
					t.Errorf("body contains %q: %s", notWant, body)
				}
			}
		})
	}
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestHandler(t), "/healthz", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("health = %d %q, want 200 ok", rec.Code, rec.Body.String())
	}
}
