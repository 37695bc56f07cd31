package view

import (
	"strconv"

	"mesa-campaigns/internal/core/domain"
)

// Column is a table column: a caption and the cell text of a value.
type Column[T any] struct {
	Header string
	Align  string // "right" for numbers, empty otherwise
	Value  func(T) string
}

// Cells returns the cell texts of v for cols.
func Cells[T any](cols []Column[T], v T) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Value(v)
	}
	return out
}

// Headers returns the captions of cols.
func Headers[T any](cols []Column[T]) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

type campaignColumn = Column[domain.Campaign]

var (
	colStatus = campaignColumn{Header: "Статус", Value: func(c domain.Campaign) string { return domain.StatusName(c.StatusID) }}
	colType   = campaignColumn{Header: "Тип кампании", Value: func(c domain.Campaign) string { return domain.TypeName(c.Type) }}
	colName   = campaignColumn{Header: "Название", Value: func(c domain.Campaign) string { return c.Name }}
	colNms    = campaignColumn{Header: "Артикулов", Align: "right", Value: func(c domain.Campaign) string { return strconv.Itoa(len(c.Nms)) }}
	colBudget = campaignColumn{Header: "Бюджет", Align: "right", Value: func(c domain.Campaign) string {
		if c.Budget == nil {
			return Placeholder
		}
		return FormatPrice(c.Budget.Budget)
	}}
	colDailyBudget = campaignColumn{Header: "Бюджет в день", Align: "right", Value: func(c domain.Campaign) string {
		if c.Budget == nil {
			return Placeholder
		}
		return FormatPrice(c.Budget.DailyBudget)
	}}
	colCpm    = campaignColumn{Header: "Ставка (CPM, ₽)", Align: "right", Value: func(c domain.Campaign) string { return OptPrice(c.Cpm) }}
	colViews  = campaignColumn{Header: "Показы", Align: "right", Value: func(c domain.Campaign) string { return OptInt(c.Views) }}
	colClicks = campaignColumn{Header: "Клики", Align: "right", Value: func(c domain.Campaign) string { return OptInt(c.Clicks) }}
	colCtr    = campaignColumn{Header: "CTR", Align: "right", Value: func(c domain.Campaign) string { return OptRatio(c.Ctr) }}
	colCpc    = campaignColumn{Header: "Ср. цена клика", Align: "right", Value: func(c domain.Campaign) string { return OptPrice(c.Cpc) }}
	colSpent  = campaignColumn{Header: "Затраты", Align: "right", Value: func(c domain.Campaign) string { return OptPrice(c.Spent) }}
	colOrders = campaignColumn{Header: "Заказы", Align: "right", Value: func(c domain.Campaign) string { return OptInt(c.Orders) }}
	colTarget = campaignColumn{Header: "Целевые затраты", Align: "right", Value: func(c domain.Campaign) string { return OptPrice(c.Target) }}
)

// CampaignColumns returns the per-campaign columns for a grouping mode. The
// subject view shows the number of articles instead of budgets.
func CampaignColumns(g domain.GroupBy) []Column[domain.Campaign] {
	metrics := []campaignColumn{colCpm, colViews, colClicks, colCtr, colCpc, colSpent, colOrders, colTarget}
	var cols []campaignColumn
	switch g {
	case domain.GroupSubject:
		cols = []campaignColumn{colNms, colStatus, colType, colName}
	default:
		cols = []campaignColumn{colStatus, colType, colName, colBudget, colDailyBudget}
	}
	return append(cols, metrics...)
}

type groupColumn = Column[domain.GroupedRow]

func statsColumns() []groupColumn {
	return []groupColumn{
		{Header: "Кампаний", Align: "right", Value: func(r domain.GroupedRow) string { return FormatInt(int64(len(r.Campaigns))) }},
		{Header: "Показы", Align: "right", Value: func(r domain.GroupedRow) string { return FormatInt(r.Stats.Views) }},
		{Header: "Клики", Align: "right", Value: func(r domain.GroupedRow) string { return FormatInt(r.Stats.Clicks) }},
		{Header: "CTR", Align: "right", Value: func(r domain.GroupedRow) string { return OptRatio(r.Stats.Ctr) }},
		{Header: "Ср. цена клика", Align: "right", Value: func(r domain.GroupedRow) string { return OptPrice(r.Stats.Cpc) }},
		{Header: "Затраты", Align: "right", Value: func(r domain.GroupedRow) string { return FormatPrice(r.Stats.Spent) }},
		{Header: "Заказы", Align: "right", Value: func(r domain.GroupedRow) string { return FormatInt(r.Stats.Orders) }},
		{Header: "Целевые затраты", Align: "right", Value: func(r domain.GroupedRow) string { return FormatPrice(r.Stats.Target) }},
	}
}

// GroupColumns returns the master-row columns for a grouping mode.
func GroupColumns(g domain.GroupBy) []Column[domain.GroupedRow] {
	var cols []groupColumn
	switch g {
	case domain.GroupArticle:
		cols = []groupColumn{
			{Header: "Артикул", Value: func(r domain.GroupedRow) string { return r.Key }},
			{Header: "Предмет", Value: func(r domain.GroupedRow) string { return r.Label }},
		}
	case domain.GroupSubject:
		cols = []groupColumn{
			{Header: "Предмет", Value: func(r domain.GroupedRow) string { return r.Label }},
			{Header: "Артикулов", Align: "right", Value: func(r domain.GroupedRow) string { return FormatInt(int64(r.SubjsCount)) }},
		}
	default:
		cols = []groupColumn{
			{Header: "Вид рекламы", Value: func(r domain.GroupedRow) string { return r.Label }},
		}
	}
	return append(cols, statsColumns()...)
}
