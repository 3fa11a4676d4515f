package target

import (
	"math"
	"time"
)

// SalesTarget tracks a quota assigned to a representative.
// ProgressPercentage is derived, never stored.
type SalesTarget struct {
	ID                 string    `json:"id" gorm:"primaryKey"`
	RepID              string    `json:"-" gorm:"column:rep_id;not null"`
	Title              string    `json:"title" gorm:"not null"`
	Description        string    `json:"description"`
	TargetType         string    `json:"targetType" gorm:"column:target_type;not null"`
	TargetValue        int64     `json:"targetValue" gorm:"column:target_value;not null"`
	CurrentValue       int64     `json:"currentValue" gorm:"column:current_value"`
	ProgressPercentage float64   `json:"progressPercentage" gorm:"-"`
	Period             string    `json:"period" gorm:"not null"`
	StartDate          time.Time `json:"startDate" gorm:"column:start_date"`
	EndDate            time.Time `json:"endDate" gorm:"column:end_date"`
	Status             string    `json:"status" gorm:"default:active"`
	Priority           string    `json:"priority" gorm:"default:medium"`
	CreatedBy          string    `json:"createdBy" gorm:"column:created_by"`
	Notes              *string   `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt          time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (SalesTarget) TableName() string {
	return "sales_targets"
}

const (
	TypeRevenue   = "revenue"
	TypeOrders    = "orders"
	TypeCustomers = "customers"
	TypeCalls     = "calls"

	PeriodDaily     = "daily"
	PeriodWeekly    = "weekly"
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"

	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusPaused    = "paused"
	StatusFailed    = "failed"
)

var validPeriods = map[string]bool{
	PeriodDaily:     true,
	PeriodWeekly:    true,
	PeriodMonthly:   true,
	PeriodQuarterly: true,
	PeriodYearly:    true,
}

func IsValidPeriod(p string) bool { return validPeriods[p] }

// Progress returns currentValue/targetValue as a percentage. A zero target
// value yields 0 rather than dividing by zero.
func (t *SalesTarget) Progress() float64 {
	if t.TargetValue == 0 {
		return 0
	}
	return math.Round(float64(t.CurrentValue)/float64(t.TargetValue)*100*100) / 100
}
