package listview

import (
	"time"

	"github.com/salesdesk/crm-portal/internal/activity"
)

// ActivityView lists the rep's activities. Search covers title, customer
// name and description; type and status filter independently.
type ActivityView struct {
	*View[activity.Activity]

	// now is swapped in tests so "today" is deterministic.
	now func() time.Time
}

func NewActivityView(loader Loader[activity.Activity]) *ActivityView {
	return &ActivityView{
		View: newView(loader,
			func(a activity.Activity) []string {
				return []string{a.Title, a.CustomerName, a.Description}
			},
			map[string]func(activity.Activity) string{
				"type":   func(a activity.Activity) string { return a.Type },
				"status": func(a activity.Activity) string { return a.Status },
			},
		),
		now: time.Now,
	}
}

// SetNow overrides the clock used for the today counter.
func (v *ActivityView) SetNow(now func() time.Time) {
	v.now = now
}

type ActivityStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Scheduled int `json:"scheduled"`
	Today     int `json:"todayActivities"`
}

func (v *ActivityView) Stats() ActivityStats {
	var stats ActivityStats
	y, m, d := v.now().Date()
	for _, a := range v.All() {
		stats.Total++
		switch a.Status {
		case activity.StatusCompleted:
			stats.Completed++
		case activity.StatusScheduled:
			stats.Scheduled++
		}
		ay, am, ad := a.ScheduledDate.Date()
		if ay == y && am == m && ad == d {
			stats.Today++
		}
	}
	return stats
}
