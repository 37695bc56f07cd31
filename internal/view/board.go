package view

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"mesa-campaigns/internal/core/domain"
)

// BoardID is the id of the board element swapped by HTMX.
const BoardID = "board"

// BoardURL returns the board link for a selection. Default values are left
// out of the query.
func BoardURL(sel domain.Selection) string {
	q := url.Values{}
	if sel.GroupBy != "" && sel.GroupBy != domain.GroupNone {
		q.Set("group", string(sel.GroupBy))
	}
	if sel.Status != "" && sel.Status != domain.FilterAll {
		q.Set("status", string(sel.Status))
	}
	if sel.Search != "" {
		q.Set("q", sel.Search)
	}
	if sel.Page > 1 {
		q.Set("page", strconv.Itoa(sel.Page))
	}
	if sel.PageSize != 0 && sel.PageSize != domain.DefaultPageSize {
		q.Set("size", strconv.Itoa(sel.PageSize))
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

// EditURL returns the edit page of a campaign.
func EditURL(id int64) string {
	return "/edit/" + strconv.FormatInt(id, 10)
}

// Board renders the filter bar and the campaign tables of b. While a
// source is loading the board polls itself through HTMX.
func Board(b domain.Board) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		sel := b.Selection

		h.raw(`<div id="` + BoardID + `"`)
		if b.State == domain.StateLoading {
			h.raw(` hx-get="`)
			h.href(BoardURL(sel))
			h.raw(`" hx-trigger="every 2s" hx-swap="outerHTML"`)
		}
		h.raw(">")

		writeFilters(h, b)

		switch b.State {
		case domain.StateLoading:
			h.raw(`<div class="backdrop"><div class="spinner" role="progressbar"></div></div>`)
		case domain.StateFailed:
			h.raw(`<div class="error">Не удалось загрузить данные: `)
			h.text(b.Error)
			h.raw(`</div>`)
		default:
			if sel.GroupBy == domain.GroupNone {
				writeFlatTable(h, b)
			} else {
				writeGroupedTable(h, sel.GroupBy, b.Groups)
			}
		}

		h.raw("</div>")
		return h.err
	})
}

func writeFilters(h *htmlWriter, b domain.Board) {
	sel := b.Selection
	sel.Page = 1

	h.raw(`<div class="filters"><div class="group"><span>Сгруппировать по:</span> <span class="toggle-group">`)
	for _, g := range domain.Groupings {
		next := sel
		next.GroupBy = g
		selected := sel.GroupBy == g
		if selected {
			// pressing the selected toggle releases it
			next.GroupBy = domain.GroupNone
		}
		writeToggle(h, BoardURL(next), g.Label(), selected)
	}
	h.raw(`</span></div><div class="filter"><span>Показывать:</span> <span class="toggle-group">`)
	for _, f := range domain.StatusFilters {
		next := sel
		next.Status = f
		label := f.Label()
		if b.CampaignsState == domain.StateReady {
			label += " (" + strconv.Itoa(b.Counts.Of(f)) + ")"
		}
		writeToggle(h, BoardURL(next), label, sel.Status == f)
	}
	h.raw(`</span></div></div>`)

	// the form carries the other selection fields so searching keeps them
	h.raw(`<form class="search" method="get" action="/">`)
	if sel.GroupBy != domain.GroupNone {
		h.raw(`<input type="hidden" name="group" value="`)
		h.text(string(sel.GroupBy))
		h.raw(`">`)
	}
	if sel.Status != domain.FilterAll {
		h.raw(`<input type="hidden" name="status" value="`)
		h.text(string(sel.Status))
		h.raw(`">`)
	}
	if sel.PageSize != 0 && sel.PageSize != domain.DefaultPageSize {
		h.raw(`<input type="hidden" name="size" value="` + strconv.Itoa(sel.PageSize) + `">`)
	}
	h.raw(`<input type="search" name="q" placeholder="Поиск" aria-label="Поиск" value="`)
	h.text(sel.Search)
	h.raw(`"></form>`)
}

func writeToggle(h *htmlWriter, href, label string, selected bool) {
	h.raw(`<a href="`)
	h.href(href)
	h.raw(`"`)
	if selected {
		h.raw(` class="selected" aria-pressed="true"`)
	}
	h.raw(">")
	h.text(label)
	h.raw("</a>")
}

func writeCampaignRows(h *htmlWriter, cols []Column[domain.Campaign], campaigns []domain.Campaign) {
	for _, c := range campaigns {
		edit := EditURL(c.ID)
		h.raw(`<tr class="clickable" onclick="window.location='`)
		h.href(edit)
		h.raw(`'">`)
		for _, col := range cols {
			if col.Header == colName.Header {
				h.raw(`<td><a href="`)
				h.href(edit)
				h.raw(`">`)
				h.text(col.Value(c))
				h.raw(`</a></td>`)
				continue
			}
			h.cell("td", col.Align, col.Value(c))
		}
		h.raw("</tr>")
	}
}

func writeFlatTable(h *htmlWriter, b domain.Board) {
	cols := CampaignColumns(domain.GroupNone)
	h.raw(`<table class="campaigns"><thead>`)
	h.headerRow(Headers(cols), aligns(cols))
	h.raw(`</thead><tbody>`)
	writeCampaignRows(h, cols, b.Rows)
	h.raw(`</tbody></table>`)
	writePager(h, b)
}

func writePager(h *htmlWriter, b domain.Board) {
	p := b.Pagination
	sel := b.Selection
	h.raw(`<div class="pager"><span>Строк на странице:</span>`)
	for _, size := range domain.PageSizes {
		next := sel
		next.PageSize = size
		next.Page = 1
		writeToggle(h, BoardURL(next), strconv.Itoa(size), p.PageSize == size)
	}
	h.raw(`<span>`)
	from, to := 0, 0
	if p.Total > 0 {
		from = (p.Page-1)*p.PageSize + 1
		to = from + len(b.Rows) - 1
	}
	h.text(strconv.Itoa(from) + "–" + strconv.Itoa(to) + " из " + strconv.Itoa(p.Total))
	h.raw(`</span>`)
	if p.Page > 1 {
		prev := sel
		prev.Page = p.Page - 1
		writeToggle(h, BoardURL(prev), "‹", false)
	}
	if p.Page < p.Pages {
		next := sel
		next.Page = p.Page + 1
		writeToggle(h, BoardURL(next), "›", false)
	}
	h.raw(`</div>`)
}

// writeGroupedTable renders one table whose header lines up with every
// master row. Each group is a tbody holding the master row and a row with
// its campaigns, shown while the group's toggle is checked.
func writeGroupedTable(h *htmlWriter, g domain.GroupBy, rows []domain.GroupedRow) {
	master := GroupColumns(g)
	child := CampaignColumns(g)
	span := strconv.Itoa(len(master) + 1)

	h.raw(`<table class="grouped grouped-by-` + string(g) + `"><thead>`)
	h.headerRow(append([]string{""}, Headers(master)...), append([]string{""}, aligns(master)...))
	h.raw(`</thead>`)

	for _, r := range rows {
		h.raw(`<tbody class="group"><tr class="master"><td><label class="expand"><input type="checkbox" class="toggle" aria-label="`)
		h.text("Развернуть: " + r.Label)
		h.raw(`"></label></td>`)
		for _, col := range master {
			h.cell("td", col.Align, col.Value(r))
		}
		h.raw(`</tr><tr class="child"><td colspan="` + span + `"><table class="children"><thead>`)
		h.headerRow(Headers(child), aligns(child))
		h.raw(`</thead><tbody>`)
		writeCampaignRows(h, child, r.Campaigns)
		h.raw(`</tbody></table></td></tr></tbody>`)
	}
	h.raw(`</table>`)
	if len(rows) == 0 {
		h.raw(`<p>Нет кампаний</p>`)
	}
}
