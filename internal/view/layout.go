package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

const styles = `
body{font-family:Roboto,Arial,sans-serif;margin:0;background:#fafafa;color:#212121}
.container{max-width:1400px;margin:0 auto;padding:24px}
.filters{display:flex;flex-wrap:wrap;gap:24px;margin-bottom:16px}
.toggle-group a{display:inline-block;padding:6px 12px;border:1px solid #1976d2;color:#1976d2;text-decoration:none;margin-right:-1px}
.toggle-group a.selected{background:#1976d2;color:#fff}
.search input{padding:8px;min-width:280px}
table{border-collapse:collapse;width:100%;background:#fff}
th,td{border:1px solid #e0e0e0;padding:4px 8px;font-size:14px}
thead{background:#9cbfcb}
.right{text-align:right}
tr.clickable{cursor:pointer}
tr.clickable:hover{background:#f0f7fa}
tbody.group tr.master{background:#eef4f6}
tbody.group tr.child{display:none}
tbody.group:has(input.toggle:checked) tr.child{display:table-row}
label.expand{cursor:pointer}
label.expand input{cursor:pointer}
table.children{margin:4px 0 8px}
.pager{margin-top:8px;display:flex;gap:8px;align-items:center}
.backdrop{display:flex;justify-content:center;padding:64px}
.spinner{width:40px;height:40px;border:4px solid #ccc;border-top-color:#1976d2;border-radius:50%;animation:spin 1s linear infinite}
@keyframes spin{to{transform:rotate(360deg)}}
.error{padding:16px;background:#fdecea;color:#611a15;border:1px solid #f5c2c0}
dl.detail{display:grid;grid-template-columns:max-content auto;gap:4px 16px}
`

// Page wraps body in the HTML document. A pending page refreshes itself
// when scripting is disabled.
func Page(title string, pending bool, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="ru"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		if pending {
			h.raw(`<noscript><meta http-equiv="refresh" content="2"></noscript>`)
		}
		h.raw("<title>")
		h.text(title)
		h.raw("</title><style>" + styles + "</style>")
		h.raw(`<script src="` + htmxScript + `"></script></head><body><div class="container">`)
		if h.err != nil {
			return h.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		h.raw("</div></body></html>")
		return h.err
	})
}

// Message renders a standalone notice, used for error pages.
func Message(title, text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<h1>")
		h.text(title)
		h.raw(`</h1><div class="error">`)
		h.text(text)
		h.raw(`</div><p><a href="/">К списку кампаний</a></p>`)
		return h.err
	})
}
