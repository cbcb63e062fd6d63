package icon

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/louisbranch/bpicons/internal/platform/icons"
	"github.com/louisbranch/bpicons/internal/ui/classes"
)

const (
	baseClass    = "bp3-icon"
	svgNamespace = "svg"
)

// Render builds the element tree for p. It never fails: a Blank icon yields
// an svg with no paths and a non-positive size yields a degenerate svg.
func Render(p Props) *html.Node {
	size := p.Size()
	paths := icons.PathsForSize(p.Icon, size)
	grid := strconv.Itoa(icons.GridSize(size))

	class := classes.New(baseClass)
	class.Push(p.Class)
	class.Extend(p.Intent)

	iconString := p.Icon.String()

	span := element("", "span", attr("class", class.String()))
	if p.hasClick() {
		span.Attr = append(span.Attr, attr("onclick", p.OnClick.Call))
	}

	svg := element(svgNamespace, "svg")
	if p.Color != nil {
		svg.Attr = append(svg.Attr, attr("fill", *p.Color))
	}
	svg.Attr = append(svg.Attr,
		attr("data-icon", iconString),
		attr("width", strconv.Itoa(size)),
		attr("height", strconv.Itoa(size)),
		attr("viewBox", "0 0 "+grid+" "+grid),
	)

	description := iconString
	if p.Title != nil {
		description = *p.Title
	}
	desc := element(svgNamespace, "desc")
	desc.AppendChild(&html.Node{Type: html.TextNode, Data: description})
	svg.AppendChild(desc)

	for _, d := range paths {
		svg.AppendChild(element(svgNamespace, "path",
			attr("d", d),
			attr("fill-rule", "evenodd"),
		))
	}

	span.AppendChild(svg)
	return span
}

func element(namespace, tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:      html.ElementNode,
		DataAtom:  atom.Lookup([]byte(tag)),
		Data:      tag,
		Namespace: namespace,
		Attr:      attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
