package activity

import "time"

// Activity is a logged or scheduled customer touchpoint.
type Activity struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	RepID         string     `json:"-" gorm:"column:rep_id;not null"`
	Type          string     `json:"type" gorm:"not null"`
	Title         string     `json:"title" gorm:"not null"`
	Description   string     `json:"description"`
	CustomerID    string     `json:"customerId" gorm:"column:customer_id"`
	CustomerName  string     `json:"customerName" gorm:"column:customer_name"`
	Status        string     `json:"status" gorm:"default:scheduled"`
	Priority      string     `json:"priority" gorm:"default:medium"`
	ScheduledDate time.Time  `json:"scheduledDate" gorm:"column:scheduled_date"`
	CompletedDate *time.Time `json:"completedDate,omitempty" gorm:"column:completed_date"`
	Duration      *int       `json:"duration,omitempty"` // minutes
	Outcome       *string    `json:"outcome,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" gorm:"column:updated_at"`
}

func (Activity) TableName() string {
	return "activities"
}

const (
	TypeCall    = "call"
	TypeEmail   = "email"
	TypeMeeting = "meeting"
	TypeVisit   = "visit"
	TypeNote    = "note"
	TypeTask    = "task"

	StatusCompleted  = "completed"
	StatusScheduled  = "scheduled"
	StatusCancelled  = "cancelled"
	StatusInProgress = "in-progress"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var validTypes = map[string]bool{
	TypeCall:    true,
	TypeEmail:   true,
	TypeMeeting: true,
	TypeVisit:   true,
	TypeNote:    true,
	TypeTask:    true,
}

var validStatuses = map[string]bool{
	StatusCompleted:  true,
	StatusScheduled:  true,
	StatusCancelled:  true,
	StatusInProgress: true,
}

var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

func IsValidType(t string) bool      { return validTypes[t] }
func IsValidStatus(s string) bool    { return validStatuses[s] }
func IsValidPriority(p string) bool  { return validPriorities[p] }

// CanBeCompleted reports whether the completion transition is allowed.
// Completed and cancelled activities stay where they are.
func (a *Activity) CanBeCompleted() bool {
	return a.Status == StatusScheduled || a.Status == StatusInProgress
}

// Complete marks the activity done and records the completion facts.
func (a *Activity) Complete(duration *int, outcome *string) {
	now := time.Now()
	a.Status = StatusCompleted
	a.CompletedDate = &now
	if duration != nil {
		a.Duration = duration
	}
	if outcome != nil {
		a.Outcome = outcome
	}
	a.UpdatedAt = now
}
