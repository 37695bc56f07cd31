package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// GroupBy selects how the board groups campaigns.
type GroupBy string

const (
	GroupNone    GroupBy = "none"
	GroupArticle GroupBy = "article"
	GroupSubject GroupBy = "subject"
	GroupType    GroupBy = "type"
)

// Groupings lists the grouping toggles in display order. GroupNone has no
// toggle of its own: it is the state with every toggle released.
var Groupings = []GroupBy{GroupSubject, GroupArticle, GroupType}

// ParseGroupBy parses a grouping name. An empty string means GroupNone.
func ParseGroupBy(s string) (GroupBy, error) {
	switch g := GroupBy(strings.ToLower(strings.TrimSpace(s))); g {
	case "", GroupNone:
		return GroupNone, nil
	case GroupArticle, GroupSubject, GroupType:
		return g, nil
	default:
		return "", fmt.Errorf("unknown grouping %q", s)
	}
}

// NeedsCatalog reports whether the grouping looks products up in the
// catalog.
func (g GroupBy) NeedsCatalog() bool {
	return g == GroupArticle || g == GroupSubject
}

// Label returns the toggle caption of the grouping.
func (g GroupBy) Label() string {
	switch g {
	case GroupArticle:
		return "Артикулу"
	case GroupSubject:
		return "Предмету"
	case GroupType:
		return "Виду рекламы"
	default:
		return ""
	}
}

// StatusBuckets partitions campaigns by status type. All holds every
// campaign; the named buckets only hold campaigns with a known status code.
type StatusBuckets struct {
	All      []Campaign
	Archived []Campaign
	Paused   []Campaign
	Active   []Campaign
}

// SplitByStatus distributes campaigns into status buckets, keeping input
// order inside each bucket.
func SplitByStatus(campaigns []Campaign) StatusBuckets {
	b := StatusBuckets{
		All:      make([]Campaign, 0, len(campaigns)),
		Archived: []Campaign{},
		Paused:   []Campaign{},
		Active:   []Campaign{},
	}
	for _, c := range campaigns {
		if t, ok := StatusTypeOf(c.StatusID); ok {
			switch t {
			case StatusArchived:
				b.Archived = append(b.Archived, c)
			case StatusPaused:
				b.Paused = append(b.Paused, c)
			case StatusActive:
				b.Active = append(b.Active, c)
			}
		}
		b.All = append(b.All, c)
	}
	return b
}

// Bucket returns the campaigns selected by a status filter.
func (b StatusBuckets) Bucket(f StatusFilter) []Campaign {
	switch f {
	case FilterArchived:
		return b.Archived
	case FilterPaused:
		return b.Paused
	case FilterActive:
		return b.Active
	default:
		return b.All
	}
}

// StatusCounts holds the size of every status bucket.
type StatusCounts struct {
	All      int `json:"all"`
	Archived int `json:"archived"`
	Paused   int `json:"paused"`
	Active   int `json:"active"`
}

// Counts returns the size of every bucket.
func (b StatusBuckets) Counts() StatusCounts {
	return StatusCounts{
		All:      len(b.All),
		Archived: len(b.Archived),
		Paused:   len(b.Paused),
		Active:   len(b.Active),
	}
}

// Of returns the count for a status filter.
func (c StatusCounts) Of(f StatusFilter) int {
	switch f {
	case FilterArchived:
		return c.Archived
	case FilterPaused:
		return c.Paused
	case FilterActive:
		return c.Active
	default:
		return c.All
	}
}

// GroupedRow is one master row of a grouped table.
type GroupedRow struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	Article    *Product   `json:"article,omitempty"`
	Campaigns  []Campaign `json:"campaigns"`
	Stats      Stats      `json:"stats"`
	SubjsCount int        `json:"subjsCount,omitempty"` // distinct articles across member campaigns
}

// GroupByArticle builds one row per catalog product, in catalog order,
// holding every campaign that advertises the product.
func GroupByArticle(campaigns []Campaign, catalog []Product) []GroupedRow {
	rows := make([]GroupedRow, 0, len(catalog))
	for _, p := range catalog {
		product := p
		var members []Campaign
		for _, c := range campaigns {
			if c.References(p.Article) {
				members = append(members, c)
			}
		}
		rows = append(rows, GroupedRow{
			Key:       strconv.FormatInt(p.Article, 10),
			Label:     p.SubjName,
			Article:   &product,
			Campaigns: members,
		})
	}
	return withStats(rows)
}

// GroupBySubject builds one row per distinct subject in first-seen catalog
// order. A campaign belongs to a subject when any of its articles maps to
// it.
func GroupBySubject(campaigns []Campaign, catalog []Product) []GroupedRow {
	names := SubjectNames(catalog)
	rows := make([]GroupedRow, 0, len(names))
	for _, name := range names {
		var members []Campaign
		for _, c := range campaigns {
			if advertisesSubject(c, name, catalog) {
				members = append(members, c)
			}
		}
		rows = append(rows, GroupedRow{
			Key:        name,
			Label:      name,
			Campaigns:  members,
			SubjsCount: distinctArticles(members),
		})
	}
	return withStats(rows)
}

// GroupByType builds one row per campaign type. Known types come first in
// table order, unknown type codes follow in ascending order.
func GroupByType(campaigns []Campaign) []GroupedRow {
	byCode := make(map[int][]Campaign)
	for _, c := range campaigns {
		byCode[c.Type] = append(byCode[c.Type], c)
	}

	codes := make([]int, 0, len(byCode))
	known := make(map[int]struct{}, len(campaignTypes))
	for _, t := range campaignTypes {
		codes = append(codes, t.Code)
		known[t.Code] = struct{}{}
	}
	var unknown []int
	for code := range byCode {
		if _, ok := known[code]; !ok {
			unknown = append(unknown, code)
		}
	}
	slices.Sort(unknown)
	codes = append(codes, unknown...)

	rows := make([]GroupedRow, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, GroupedRow{
			Key:       strconv.Itoa(code),
			Label:     TypeName(code),
			Campaigns: byCode[code],
		})
	}
	return withStats(rows)
}

// Flatten returns the member campaigns of all rows, each campaign once, in
// first-seen order.
func Flatten(rows []GroupedRow) []Campaign {
	seen := make(map[int64]struct{})
	var out []Campaign
	for _, r := range rows {
		for _, c := range r.Campaigns {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

func advertisesSubject(c Campaign, subject string, catalog []Product) bool {
	for _, nm := range c.Nms {
		if name, ok := SubjectOf(nm, catalog); ok && name == subject {
			return true
		}
	}
	return false
}

func distinctArticles(campaigns []Campaign) int {
	seen := make(map[int64]struct{})
	for _, c := range campaigns {
		for _, nm := range c.Nms {
			seen[nm] = struct{}{}
		}
	}
	return len(seen)
}

// withStats aggregates every row and drops rows without campaigns.
func withStats(rows []GroupedRow) []GroupedRow {
	out := make([]GroupedRow, 0, len(rows))
	for _, r := range rows {
		r.Stats = Aggregate(r.Campaigns)
		if len(r.Campaigns) == 0 {
			continue
		}
		out = append(out, r)
	}
	return out
}
