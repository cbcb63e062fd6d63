package gallery

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const galleryStyles = `body{font-family:sans-serif;margin:2rem;color:#182026}
table{border-collapse:collapse}
td,th{padding:.4rem .8rem;border-bottom:1px solid #e1e8ed;text-align:left}
.bp3-icon{display:inline-block;vertical-align:middle;fill:currentColor}
.bp3-intent-primary{color:#137cbd}
.bp3-intent-success{color:#0f9960}
.bp3-intent-warning{color:#d9822b}
.bp3-intent-danger{color:#db3737}`

type pageLabels struct {
	Title    string
	Count    string
	Example  string
	Name     string
	Standard string
	Large    string
}

type iconRow struct {
	Name     string
	Href     string
	Standard templ.Component
	Large    templ.Component
}

type pageData struct {
	Lang    string
	Labels  pageLabels
	Example templ.Component
	Rows    []iconRow
}

// pageWriter stops writing after the first error.
type pageWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (p *pageWriter) raw(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *pageWriter) text(s string) {
	p.raw(templ.EscapeString(s))
}

func (p *pageWriter) component(c templ.Component) {
	if p.err == nil && c != nil {
		p.err = c.Render(p.ctx, p.w)
	}
}

// galleryPage renders the full icon listing.
func galleryPage(data pageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{ctx: ctx, w: w}
		p.raw(`<!doctype html><html lang="`)
		p.text(data.Lang)
		p.raw(`"><head><meta charset="utf-8"><title>`)
		p.text(data.Labels.Title)
		p.raw(`</title><style>`)
		p.raw(galleryStyles)
		p.raw(`</style></head><body><h1>`)
		p.text(data.Labels.Title)
		p.raw(`</h1><p class="gallery-count">`)
		p.text(data.Labels.Count)
		p.raw(`</p><section class="gallery-example"><h2>`)
		p.text(data.Labels.Example)
		p.raw(`</h2>`)
		p.component(data.Example)
		p.raw(`</section><table class="gallery-icons"><thead><tr><th>`)
		p.text(data.Labels.Name)
		p.raw(`</th><th>`)
		p.text(data.Labels.Standard)
		p.raw(`</th><th>`)
		p.text(data.Labels.Large)
		p.raw(`</th></tr></thead><tbody>`)
		for _, row := range data.Rows {
			p.raw(`<tr><td><a href="`)
			p.text(row.Href)
			p.raw(`">`)
			p.text(row.Name)
			p.raw(`</a></td><td>`)
			p.component(row.Standard)
			p.raw(`</td><td>`)
			p.component(row.Large)
			p.raw(`</td></tr>`)
		}
		p.raw(`</tbody></table></body></html>`)
		return p.err
	})
}
