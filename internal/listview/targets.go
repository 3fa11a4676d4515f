package listview

import (
	"math"

	"github.com/salesdesk/crm-portal/internal/target"
)

// TargetView lists the rep's sales targets. There is no free-text search
// on this screen; status and period filter independently.
type TargetView struct {
	*View[target.SalesTarget]
}

func NewTargetView(loader Loader[target.SalesTarget]) *TargetView {
	return &TargetView{View: newView(loader,
		func(target.SalesTarget) []string { return nil },
		map[string]func(target.SalesTarget) string{
			"status": func(t target.SalesTarget) string { return t.Status },
			"period": func(t target.SalesTarget) string { return t.Period },
		},
	)}
}

type TargetStats struct {
	Total           int `json:"total"`
	Active          int `json:"active"`
	Completed       int `json:"completed"`
	AverageProgress int `json:"averageProgress"`
}

func (v *TargetView) Stats() TargetStats {
	var stats TargetStats
	var progressSum float64
	for _, t := range v.All() {
		stats.Total++
		switch t.Status {
		case target.StatusActive:
			stats.Active++
		case target.StatusCompleted:
			stats.Completed++
		}
		progressSum += t.Progress()
	}
	if stats.Total > 0 {
		stats.AverageProgress = int(math.Round(progressSum / float64(stats.Total)))
	}
	return stats
}
