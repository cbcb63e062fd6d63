package gallery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	"github.com/louisbranch/bpicons/internal/platform/icons"
	"github.com/louisbranch/bpicons/internal/platform/intent"
	"github.com/louisbranch/bpicons/internal/services/gallery/routepath"
	"github.com/louisbranch/bpicons/internal/ui/icon"
)

const (
	tracerName      = "github.com/louisbranch/bpicons/internal/services/gallery"
	htmlContentType = "text/html; charset=utf-8"
)

var (
	errUnknownIcon   = errors.New("unknown icon")
	errInvalidSize   = errors.New("invalid icon size")
	errInvalidIntent = errors.New("invalid intent")
)

type handler struct {
	tracer  trace.Tracer
	metrics *metrics
}

func newHandler() *handler {
	return &handler{
		tracer:  otel.Tracer(tracerName),
		metrics: newMetrics(),
	}
}

// HandleIndex renders every registry icon on both grids.
func (h *handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "gallery.index")
	defer span.End()

	tag := resolveTag(r)
	printer := message.NewPrinter(tag)

	names := icons.Names()
	rows := make([]iconRow, 0, len(names))
	for _, name := range names {
		if name == icons.Blank {
			continue
		}
		rows = append(rows, iconRow{
			Name:     name.String(),
			Href:     routepath.IconPath(name.String()),
			Standard: icon.Component(icon.Props{Icon: name, IconSize: icons.SizeStandard}),
			Large:    icon.Component(icon.Props{Icon: name, IconSize: icons.SizeLarge}),
		})
	}
	span.SetAttributes(
		attribute.String("gallery.lang", tag.String()),
		attribute.Int("gallery.icons", len(rows)),
	)

	page := galleryPage(pageData{
		Lang: tag.String(),
		Labels: pageLabels{
			Title:    printer.Sprintf(msgTitle),
			Count:    printer.Sprintf(msgCount, len(rows)),
			Example:  printer.Sprintf(msgExample),
			Name:     printer.Sprintf(msgName),
			Standard: msgStandard,
			Large:    msgLarge,
		},
		Example: icon.Component(icon.Props{Icon: icons.Print}),
		Rows:    rows,
	})
	writeHTML(ctx, w, page, span)
}

// HandleIcon renders one icon configured from the query string.
func (h *handler) HandleIcon(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "gallery.icon")
	defer span.End()

	props, err := parseIconProps(r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.metrics.reject(err)
		status := http.StatusBadRequest
		if errors.Is(err, errUnknownIcon) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	span.SetAttributes(
		attribute.String("icon.name", props.Icon.String()),
		attribute.Int("icon.size", props.Size()),
	)
	if writeHTML(ctx, w, icon.Component(props), span) {
		h.metrics.rendered(props.Icon, props.Size())
	}
}

// HandleMetrics serves the gallery's Prometheus registry.
func (h *handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	h.metrics.handler().ServeHTTP(w, r)
}

// HandleHealth reports liveness.
func (h *handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// parseIconProps maps query parameters onto icon props. Parameters that are
// not present stay absent.
func parseIconProps(r *http.Request) (icon.Props, error) {
	rawName := r.PathValue("name")
	name, ok := icons.ParseName(rawName)
	if !ok {
		return icon.Props{}, fmt.Errorf("%w %q", errUnknownIcon, rawName)
	}
	props := icon.Props{Icon: name}

	query := r.URL.Query()
	if raw := strings.TrimSpace(query.Get("size")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return icon.Props{}, fmt.Errorf("%w %q", errInvalidSize, raw)
		}
		props.IconSize = size
	}
	if query.Has("color") {
		color := query.Get("color")
		props.Color = &color
	}
	if query.Has("title") {
		title := query.Get("title")
		props.Title = &title
	}
	if raw := query.Get("intent"); raw != "" {
		parsed, ok := intent.Parse(raw)
		if !ok {
			return icon.Props{}, fmt.Errorf("%w %q", errInvalidIntent, raw)
		}
		props.Intent = parsed
	}
	props.Class = query.Get("class")
	return props, nil
}

// writeHTML renders into a buffer so a failed render can still report 500.
// It reports whether the component was written.
func writeHTML(ctx context.Context, w http.ResponseWriter, c templ.Component, span trace.Span) bool {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render")
		log.Printf("gallery render: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return false
	}
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
	return true
}
