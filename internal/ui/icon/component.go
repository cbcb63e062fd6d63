package icon

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

// Component renders p as a templ component. The click script, if it carries
// a function body, is written once per request before the icon.
func Component(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(ctx, w, p)
	})
}

func write(ctx context.Context, w io.Writer, p Props) error {
	if p.hasClick() {
		if err := templ.RenderScriptItems(ctx, w, p.OnClick); err != nil {
			return err
		}
	}
	return html.Render(w, Render(p))
}

// Icon holds the props of a mounted icon and re-renders only when they
// change.
type Icon struct {
	props Props
}

// New returns an icon mounted with p.
func New(p Props) *Icon {
	return &Icon{props: p}
}

// Props returns the current props.
func (i *Icon) Props() Props {
	return i.props
}

// Change stores p and reports whether the icon needs to be rendered again.
func (i *Icon) Change(p Props) bool {
	if Equal(i.props, p) {
		return false
	}
	i.props = p
	return true
}

// View returns the element tree for the current props.
func (i *Icon) View() *html.Node {
	return Render(i.props)
}

// Render implements templ.Component.
func (i *Icon) Render(ctx context.Context, w io.Writer) error {
	return write(ctx, w, i.props)
}
