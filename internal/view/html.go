package view

import (
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first write error, so
// components can emit a sequence of fragments and check once.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes escaped text content or attribute values.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// href writes a sanitized URL attribute value.
func (h *htmlWriter) href(u string) {
	h.text(string(templ.URL(u)))
}

func (h *htmlWriter) cell(tag, align, content string) {
	h.raw("<" + tag)
	if align != "" {
		h.raw(` class="` + align + `"`)
	}
	h.raw(">")
	h.text(content)
	h.raw("</" + tag + ">")
}

func (h *htmlWriter) headerRow(cols []string, aligns []string) {
	h.raw("<tr>")
	for i, c := range cols {
		align := ""
		if i < len(aligns) {
			align = aligns[i]
		}
		h.cell("th", align, c)
	}
	h.raw("</tr>")
}

func aligns[T any](cols []Column[T]) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Align
	}
	return out
}
