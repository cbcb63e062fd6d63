// Package routepath defines the gallery HTTP route patterns.
package routepath

const (
	Index   = "GET /{$}"
	Icon    = "GET /icons/{name}"
	Healthz = "GET /healthz"
	Metrics = "GET /metrics"
)

// IconPath returns the URL path of a single rendered icon.
func IconPath(name string) string {
	return "/icons/" + name
}
