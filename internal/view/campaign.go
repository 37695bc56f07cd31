package view

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"mesa-campaigns/internal/core/domain"
)

// CampaignDetail renders the page a campaign row links to.
func CampaignDetail(c domain.Campaign) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<p><a href="/">← К списку кампаний</a></p><h1>`)
		h.text(c.Name)
		h.raw(`</h1><dl class="detail">`)

		field := func(name, value string) {
			h.raw("<dt>")
			h.text(name)
			h.raw("</dt><dd>")
			h.text(value)
			h.raw("</dd>")
		}
		field("ID", strconv.FormatInt(c.ID, 10))
		for _, col := range CampaignColumns(domain.GroupNone) {
			if col.Header == colName.Header {
				continue
			}
			field(col.Header, col.Value(c))
		}
		h.raw(`</dl><h2>Артикулы</h2><ul class="nms">`)
		for _, nm := range c.Nms {
			h.raw("<li>")
			h.text(strconv.FormatInt(nm, 10))
			h.raw("</li>")
		}
		h.raw("</ul>")
		return h.err
	})
}
