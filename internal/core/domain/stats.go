package domain

// Stats are the summary counters of a set of campaigns. Ctr and Cpc are
// ratios; they are nil when their denominator is zero and must be rendered
// as a placeholder.
type Stats struct {
	Views  int64    `json:"Views"`
	Clicks int64    `json:"Clicks"`
	Ctr    *float64 `json:"Ctr"` // percent of views that were clicked
	Cpc    *float64 `json:"Cpc"`
	Spent  float64  `json:"spent"`
	Orders int64    `json:"orders"`
	Target float64  `json:"target"`
}

// Aggregate sums the metrics of campaigns. Missing metrics count as zero.
// An empty input yields zero counters and undefined ratios.
func Aggregate(campaigns []Campaign) Stats {
	var s Stats
	for _, c := range campaigns {
		s.Views += intOrZero(c.Views)
		s.Clicks += intOrZero(c.Clicks)
		s.Orders += intOrZero(c.Orders)
		s.Spent += floatOrZero(c.Spent)
		s.Target += floatOrZero(c.Target)
	}
	if s.Views > 0 {
		ctr := float64(s.Clicks) / float64(s.Views) * 100
		s.Ctr = &ctr
	}
	if s.Clicks > 0 {
		cpc := s.Spent / float64(s.Clicks)
		s.Cpc = &cpc
	}
	return s
}

func intOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
