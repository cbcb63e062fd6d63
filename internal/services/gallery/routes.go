package gallery

import (
	"net/http"

	"github.com/louisbranch/bpicons/internal/services/gallery/routepath"
)

// Service defines the route handlers served by the gallery.
type Service interface {
	HandleIndex(w http.ResponseWriter, r *http.Request)
	HandleIcon(w http.ResponseWriter, r *http.Request)
	HandleHealth(w http.ResponseWriter, r *http.Request)
	HandleMetrics(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires gallery routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Index, service.HandleIndex)
	mux.HandleFunc(routepath.Icon, service.HandleIcon)
	mux.HandleFunc(routepath.Healthz, service.HandleHealth)
	mux.HandleFunc(routepath.Metrics, service.HandleMetrics)
}
