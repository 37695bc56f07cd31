package domain

// Campaign represents an advertising campaign as returned by the campaign
// API. Metrics are optional: the API omits them for campaigns that never
// ran, so they are pointers and render as a placeholder when nil.
// Campaigns are read-only once fetched.
type Campaign struct {
	ID       int64   `json:"Id"`
	Name     string  `json:"CampaignName"`
	StatusID int     `json:"statusId"`
	Type     int     `json:"Type"`
	Nms      []int64 `json:"nms"` // product articles the campaign advertises

	Views  *int64   `json:"Views,omitempty"`
	Clicks *int64   `json:"Clicks,omitempty"`
	Ctr    *float64 `json:"Ctr,omitempty"`
	Cpc    *float64 `json:"Cpc,omitempty"`
	Cpm    *float64 `json:"Cpm,omitempty"`
	Spent  *float64 `json:"spent,omitempty"`
	Orders *int64   `json:"orders,omitempty"`
	Target *float64 `json:"target,omitempty"`

	Budget *Budget `json:"budget,omitempty"`
}

// Budget is the optional spending limit of a campaign.
type Budget struct {
	Budget      float64 `json:"budget"`
	DailyBudget float64 `json:"dailyBudget"`
}

// References reports whether the campaign advertises the given article.
func (c Campaign) References(article int64) bool {
	for _, nm := range c.Nms {
		if nm == article {
			return true
		}
	}
	return false
}

// FindCampaign returns the campaign with the given id.
func FindCampaign(campaigns []Campaign, id int64) (Campaign, bool) {
	for _, c := range campaigns {
		if c.ID == id {
			return c, true
		}
	}
	return Campaign{}, false
}
