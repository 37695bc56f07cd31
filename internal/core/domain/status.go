package domain

import (
	"fmt"
	"strings"
)

// StatusType is the coarse lifecycle bucket a campaign status code maps to.
type StatusType string

const (
	StatusArchived StatusType = "archived"
	StatusPaused   StatusType = "paused"
	StatusActive   StatusType = "active"
)

// Campaign status codes reported by the campaign API.
const (
	StatusCodeDeleting = -1
	StatusCodeReady    = 4
	StatusCodeFinished = 7
	StatusCodeDeclined = 8
	StatusCodeRunning  = 9
	StatusCodePaused   = 11
)

// statusTypes maps status codes to buckets. Codes missing here belong to no
// named bucket.
var statusTypes = map[int]StatusType{
	StatusCodeFinished: StatusArchived,
	StatusCodeDeclined: StatusArchived,
	StatusCodePaused:   StatusPaused,
	StatusCodeRunning:  StatusActive,
}

var statusNames = map[int]string{
	StatusCodeDeleting: "Удаляется",
	StatusCodeReady:    "Готова к запуску",
	StatusCodeFinished: "Завершена",
	StatusCodeDeclined: "Отказана",
	StatusCodeRunning:  "Идут показы",
	StatusCodePaused:   "Приостановлена",
}

// CampaignType describes a campaign placement type.
type CampaignType struct {
	Code int
	Name string
}

// campaignTypes is ordered; type grouping follows this order.
var campaignTypes = []CampaignType{
	{Code: 4, Name: "В каталоге"},
	{Code: 5, Name: "В карточке товара"},
	{Code: 6, Name: "В поиске"},
	{Code: 7, Name: "В рекомендациях на главной"},
	{Code: 8, Name: "Автоматическая"},
	{Code: 9, Name: "Поиск + каталог"},
}

// StatusTypeOf returns the bucket for a status code. ok is false for codes
// outside the status table.
func StatusTypeOf(code int) (StatusType, bool) {
	t, ok := statusTypes[code]
	return t, ok
}

// StatusName returns the display name of a status code.
func StatusName(code int) string {
	if name, ok := statusNames[code]; ok {
		return name
	}
	return unknownName(code)
}

// TypeName returns the display name of a campaign type code.
func TypeName(code int) string {
	for _, t := range campaignTypes {
		if t.Code == code {
			return t.Name
		}
	}
	return unknownName(code)
}

// CampaignTypes returns the known campaign types in display order.
func CampaignTypes() []CampaignType {
	out := make([]CampaignType, len(campaignTypes))
	copy(out, campaignTypes)
	return out
}

func unknownName(code int) string {
	return fmt.Sprintf("Неизвестно (%d)", code)
}

// StatusFilter selects one of the status buckets shown on the board.
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterActive   StatusFilter = StatusFilter(StatusActive)
	FilterPaused   StatusFilter = StatusFilter(StatusPaused)
	FilterArchived StatusFilter = StatusFilter(StatusArchived)
)

// StatusFilters lists the filters in toggle order.
var StatusFilters = []StatusFilter{FilterAll, FilterActive, FilterPaused, FilterArchived}

// ParseStatusFilter parses a filter name. An empty string means FilterAll.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterActive, FilterPaused, FilterArchived:
		return f, nil
	default:
		return "", fmt.Errorf("unknown status filter %q", s)
	}
}

// Label returns the toggle caption of the filter.
func (f StatusFilter) Label() string {
	switch f {
	case FilterActive:
		return "Активные"
	case FilterPaused:
		return "Остановленные"
	case FilterArchived:
		return "Архив"
	default:
		return "Все"
	}
}
