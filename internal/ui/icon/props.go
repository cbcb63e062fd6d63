package icon

import (
	"github.com/a-h/templ"

	"github.com/louisbranch/bpicons/internal/platform/icons"
	"github.com/louisbranch/bpicons/internal/platform/intent"
)

// Props are the inputs of one icon render. Nil pointers, intent.None and an
// OnClick without a Call mean the input is absent.
type Props struct {
	Icon  icons.Name
	Class string
	// Title is the text of the <desc> element. Defaults to the icon name.
	Title *string
	// Color is applied as the svg fill. When nil the fill comes from CSS.
	Color  *string
	Intent intent.Intent
	// IconSize is the rendered width and height in pixels. Zero means
	// icons.SizeStandard.
	IconSize int
	OnClick  templ.ComponentScript
}

// Size returns the rendered pixel size with the default applied.
func (p Props) Size() int {
	if p.IconSize == 0 {
		return icons.SizeStandard
	}
	return p.IconSize
}

func (p Props) hasClick() bool {
	return p.OnClick.Call != ""
}

// Equal reports whether two props render the same output.
func Equal(a, b Props) bool {
	return a.Icon == b.Icon &&
		a.Class == b.Class &&
		optionalEqual(a.Title, b.Title) &&
		optionalEqual(a.Color, b.Color) &&
		a.Intent == b.Intent &&
		a.Size() == b.Size() &&
		a.OnClick == b.OnClick
}

func optionalEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
