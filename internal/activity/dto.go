package activity

import (
	"errors"
	"time"
)

// CreateActivityDTO is the request payload for POST /crm/activities.
type CreateActivityDTO struct {
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	CustomerID    string    `json:"customerId,omitempty"`
	Priority      string    `json:"priority,omitempty"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Notes         *string   `json:"notes,omitempty"`
}

func (d CreateActivityDTO) Validate() error {
	if !IsValidType(d.Type) {
		return errors.New("type must be one of call, email, meeting, visit, note, task")
	}
	if d.Title == "" {
		return errors.New("title is required")
	}
	if d.Priority != "" && !IsValidPriority(d.Priority) {
		return errors.New("priority must be one of low, medium, high")
	}
	if d.ScheduledDate.IsZero() {
		return errors.New("scheduledDate is required")
	}
	return nil
}

// UpdateActivityDTO carries editable fields for PUT /crm/activities/{id}.
type UpdateActivityDTO struct {
	Title         string     `json:"title,omitempty"`
	Description   string     `json:"description,omitempty"`
	Priority      string     `json:"priority,omitempty"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

func (d UpdateActivityDTO) Validate() error {
	if d.Priority != "" && !IsValidPriority(d.Priority) {
		return errors.New("priority must be one of low, medium, high")
	}
	if d.Title == "" && d.Description == "" && d.Priority == "" &&
		d.ScheduledDate == nil && d.Notes == nil {
		return errors.New("no fields to update")
	}
	return nil
}

func (d UpdateActivityDTO) applyTo(a *Activity) {
	if d.Title != "" {
		a.Title = d.Title
	}
	if d.Description != "" {
		a.Description = d.Description
	}
	if d.Priority != "" {
		a.Priority = d.Priority
	}
	if d.ScheduledDate != nil {
		a.ScheduledDate = *d.ScheduledDate
	}
	if d.Notes != nil {
		a.Notes = d.Notes
	}
}

// CompleteActivityDTO is the body of PATCH /crm/activities/{id}/complete.
type CompleteActivityDTO struct {
	Duration *int    `json:"duration,omitempty"` // minutes
	Outcome  *string `json:"outcome,omitempty"`
}

func (d CompleteActivityDTO) Validate() error {
	if d.Duration != nil && *d.Duration <= 0 {
		return errors.New("duration must be greater than 0")
	}
	return nil
}
