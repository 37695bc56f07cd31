package domain

import (
	"fmt"
	"slices"
)

// PageSizes are the page sizes offered by the flat table.
var PageSizes = []int{10, 50, 100, 300}

// DefaultPageSize is used when no page size is selected.
const DefaultPageSize = 10

// Selection is the user's current view of the board.
type Selection struct {
	GroupBy  GroupBy      `json:"group"`
	Status   StatusFilter `json:"status"`
	Search   string       `json:"q"`
	Page     int          `json:"page"`
	PageSize int          `json:"size"`
}

// DefaultSelection shows every campaign ungrouped on the first page.
func DefaultSelection() Selection {
	return Selection{
		GroupBy:  GroupNone,
		Status:   FilterAll,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Validate checks the page fields. Zero values are accepted and mean the
// defaults.
func (s Selection) Validate() error {
	if s.Page < 0 {
		return fmt.Errorf("page must be positive, got %d", s.Page)
	}
	if s.PageSize != 0 && !slices.Contains(PageSizes, s.PageSize) {
		return fmt.Errorf("page size must be one of %v, got %d", PageSizes, s.PageSize)
	}
	return nil
}

func (s Selection) normalized() Selection {
	if s.GroupBy == "" {
		s.GroupBy = GroupNone
	}
	if s.Status == "" {
		s.Status = FilterAll
	}
	if s.Page < 1 {
		s.Page = 1
	}
	if s.PageSize == 0 {
		s.PageSize = DefaultPageSize
	}
	return s
}

// Pagination describes the visible page of the flat table.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"size"`
	Pages    int `json:"pages"`
	Total    int `json:"total"`
}

// Paginate returns the requested page of campaigns. The page is clamped to
// the existing range; an empty list has one empty page.
func Paginate(campaigns []Campaign, page, size int) ([]Campaign, Pagination) {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (len(campaigns) + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	page = max(1, min(page, pages))
	start := min((page-1)*size, len(campaigns))
	end := min(start+size, len(campaigns))
	return campaigns[start:end], Pagination{
		Page:     page,
		PageSize: size,
		Pages:    pages,
		Total:    len(campaigns),
	}
}

// Board is the composed view of the dashboard for one selection.
type Board struct {
	Selection      Selection    `json:"selection"`
	State          LoadState    `json:"state"`
	Err            error        `json:"-"`
	Error          string       `json:"error,omitempty"`
	CampaignsState LoadState    `json:"campaignsState"`
	CatalogState   LoadState    `json:"catalogState"`
	Counts         StatusCounts `json:"counts"`
	Total          Stats        `json:"total"`
	Rows           []Campaign   `json:"rows,omitempty"`
	Groups         []GroupedRow `json:"groups,omitempty"`
	Pagination     Pagination   `json:"pagination"`
}

// BuildBoard composes the board from the two source snapshots. Filtering is
// applied before grouping in every mode. The catalog only gates the
// groupings that need it; counts and totals are available as soon as the
// campaigns are.
func BuildBoard(campaigns Loadable[[]Campaign], catalog Loadable[[]Product], sel Selection) Board {
	sel = sel.normalized()
	b := Board{
		Selection:      sel,
		CampaignsState: campaigns.State,
		CatalogState:   catalog.State,
	}

	status := Join(campaigns.Status())
	if sel.GroupBy.NeedsCatalog() {
		status = Join(campaigns.Status(), catalog.Status())
	}
	b.State = status.State
	if status.Err != nil {
		b.Err = status.Err
		b.Error = status.Err.Error()
	}

	if !campaigns.Ready() {
		return b
	}
	buckets := SplitByStatus(campaigns.Data)
	b.Counts = buckets.Counts()
	filtered := Filter(buckets, sel.Status, sel.Search)
	b.Total = Aggregate(filtered)

	if status.State != StateReady {
		return b
	}
	switch sel.GroupBy {
	case GroupArticle:
		b.Groups = GroupByArticle(filtered, catalog.Data)
	case GroupSubject:
		b.Groups = GroupBySubject(filtered, catalog.Data)
	case GroupType:
		b.Groups = GroupByType(filtered)
	default:
		b.Rows, b.Pagination = Paginate(filtered, sel.Page, sel.PageSize)
		b.Selection.Page = b.Pagination.Page
	}
	return b
}
