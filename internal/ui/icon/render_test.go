package icon

import (
	"slices"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/louisbranch/bpicons/internal/platform/icons"
	"github.com/louisbranch/bpicons/internal/platform/intent"
)

func ptr(s string) *string { return &s }

func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func elementChildren(n *html.Node, tag string) []*html.Node {
	var result []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			result = append(result, c)
		}
	}
	return result
}

// unpack returns the svg, desc text and path data of a rendered icon.
func unpack(t *testing.T, span *html.Node) (*html.Node, string, []string) {
	t.Helper()
	if span.Type != html.ElementNode || span.Data != "span" {
		t.Fatalf("root = %q, want span", span.Data)
	}
	svgs := elementChildren(span, "svg")
	if len(svgs) != 1 {
		t.Fatalf("span has %d svg children, want 1", len(svgs))
	}
	svg := svgs[0]
	descs := elementChildren(svg, "desc")
	if len(descs) != 1 {
		t.Fatalf("svg has %d desc children, want 1", len(descs))
	}
	if svg.FirstChild != descs[0] {
		t.Fatal("desc is not the first svg child")
	}
	var text string
	if descs[0].FirstChild != nil {
		text = descs[0].FirstChild.Data
	}
	var paths []string
	for _, p := range elementChildren(svg, "path") {
		d, _ := attrValue(p, "d")
		if rule, _ := attrValue(p, "fill-rule"); rule != "evenodd" {
			t.Errorf("path fill-rule = %q, want evenodd", rule)
		}
		paths = append(paths, d)
	}
	return svg, text, paths
}

func TestRenderStandardIcon(t *testing.T) {
	span := Render(Props{Icon: icons.Print})
	svg, desc, paths := unpack(t, span)

	if class, _ := attrValue(span, "class"); class != "bp3-icon" {
		t.Fatalf("class = %q, want bp3-icon", class)
	}
	want := map[string]string{
		"data-icon": "Print",
		"width":     "16",
		"height":    "16",
		"viewBox":   "0 0 16 16",
	}
	for key, val := range want {
		if got, _ := attrValue(svg, key); got != val {
			t.Errorf("svg %s = %q, want %q", key, got, val)
		}
	}
	if desc != "Print" {
		t.Errorf("desc = %q, want Print", desc)
	}
	if !slices.Equal(paths, icons.Paths16(icons.Print)) {
		t.Errorf("paths = %q, want 16px art", paths)
	}
}

func TestRenderSizes(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		wantSide  string
		wantView  string
		wantPaths []string
	}{
		{name: "default", size: 0, wantSide: "16", wantView: "0 0 16 16", wantPaths: icons.Paths16(icons.Print)},
		{name: "standard", size: 16, wantSide: "16", wantView: "0 0 16 16", wantPaths: icons.Paths16(icons.Print)},
		{name: "large", size: 20, wantSide: "20", wantView: "0 0 20 20", wantPaths: icons.Paths20(icons.Print)},
		{name: "scaled", size: 32, wantSide: "32", wantView: "0 0 20 20", wantPaths: icons.Paths20(icons.Print)},
		{name: "between grids", size: 18, wantSide: "18", wantView: "0 0 16 16", wantPaths: icons.Paths20(icons.Print)},
		{name: "small", size: 12, wantSide: "12", wantView: "0 0 16 16", wantPaths: icons.Paths20(icons.Print)},
		{name: "negative", size: -1, wantSide: "-1", wantView: "0 0 16 16", wantPaths: icons.Paths20(icons.Print)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svg, _, paths := unpack(t, Render(Props{Icon: icons.Print, IconSize: tc.size}))
			if got, _ := attrValue(svg, "width"); got != tc.wantSide {
				t.Errorf("width = %q, want %q", got, tc.wantSide)
			}
			if got, _ := attrValue(svg, "height"); got != tc.wantSide {
				t.Errorf("height = %q, want %q", got, tc.wantSide)
			}
			if got, _ := attrValue(svg, "viewBox"); got != tc.wantView {
				t.Errorf("viewBox = %q, want %q", got, tc.wantView)
			}
			if !slices.Equal(paths, tc.wantPaths) {
				t.Errorf("paths = %q, want %q", paths, tc.wantPaths)
			}
		})
	}
}

func TestRenderBlankHasSkeletonOnly(t *testing.T) {
	for _, size := range []int{16, 20} {
		svg, desc, paths := unpack(t, Render(Props{Icon: icons.Blank, IconSize: size}))
		if desc != "Blank" {
			t.Errorf("size %d: desc = %q, want Blank", size, desc)
		}
		if len(paths) != 0 {
			t.Errorf("size %d: got %d paths, want 0", size, len(paths))
		}
		if got, _ := attrValue(svg, "data-icon"); got != "Blank" {
			t.Errorf("size %d: data-icon = %q, want Blank", size, got)
		}
	}
}

func TestRenderOptionalAttributes(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		span := Render(Props{Icon: icons.Print})
		svg, _, _ := unpack(t, span)
		if _, ok := attrValue(svg, "fill"); ok {
			t.Error("svg has fill without a color")
		}
		if _, ok := attrValue(span, "onclick"); ok {
			t.Error("span has onclick without a handler")
		}
	})

	t.Run("present", func(t *testing.T) {
		span := Render(Props{
			Icon:    icons.Print,
			Color:   ptr("red"),
			Title:   ptr("Print job"),
			OnClick: onClick("print()"),
		})
		svg, desc, _ := unpack(t, span)
		if got, ok := attrValue(svg, "fill"); !ok || got != "red" {
			t.Errorf("fill = %q (present %t), want red", got, ok)
		}
		if svg.Attr[0].Key != "fill" {
			t.Errorf("first svg attribute = %q, want fill", svg.Attr[0].Key)
		}
		if desc != "Print job" {
			t.Errorf("desc = %q, want Print job", desc)
		}
		if got, ok := attrValue(span, "onclick"); !ok || got != "print()" {
			t.Errorf("onclick = %q (present %t), want print()", got, ok)
		}
	})

	t.Run("empty strings are still present", func(t *testing.T) {
		svg, desc, _ := unpack(t, Render(Props{Icon: icons.Print, Color: ptr(""), Title: ptr("")}))
		if _, ok := attrValue(svg, "fill"); !ok {
			t.Error("svg fill missing for an empty color")
		}
		if desc != "" {
			t.Errorf("desc = %q, want empty title", desc)
		}
	})
}

func TestRenderClassComposition(t *testing.T) {
	tests := []struct {
		name  string
		props Props
		want  string
	}{
		{name: "base", props: Props{Icon: icons.Print}, want: "bp3-icon"},
		{name: "empty extra", props: Props{Icon: icons.Print, Class: ""}, want: "bp3-icon"},
		{name: "extra", props: Props{Icon: icons.Print, Class: "mr-2"}, want: "bp3-icon mr-2"},
		{name: "intent", props: Props{Icon: icons.Print, Intent: intent.Success}, want: "bp3-icon bp3-intent-success"},
		{name: "extra and intent", props: Props{Icon: icons.Print, Class: "mr-2", Intent: intent.Danger}, want: "bp3-icon mr-2 bp3-intent-danger"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got, _ := attrValue(Render(tc.props), "class"); got != tc.want {
				t.Fatalf("class = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderEveryIcon(t *testing.T) {
	for _, name := range icons.Names() {
		for _, size := range []int{icons.SizeStandard, icons.SizeLarge} {
			_, desc, paths := unpack(t, Render(Props{Icon: name, IconSize: size}))
			if desc != name.String() {
				t.Errorf("%s@%d: desc = %q", name, size, desc)
			}
			if want := icons.PathsForSize(name, size); !slices.Equal(paths, want) {
				t.Errorf("%s@%d: got %d paths, want %d", name, size, len(paths), len(want))
			}
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	props := Props{Icon: icons.Edit, Class: "a b", Color: ptr("#fff"), Intent: intent.Warning, IconSize: 20}
	var first, second strings.Builder
	if err := html.Render(&first, Render(props)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := html.Render(&second, Render(props)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("renders differ:\n%s\n%s", first.String(), second.String())
	}
}
