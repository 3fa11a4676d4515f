package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/salesdesk/crm-portal/internal"
	"github.com/salesdesk/crm-portal/internal/core/events"
	"github.com/salesdesk/crm-portal/internal/customer"
)

// Repository defines the data access methods for activities
type Repository interface {
	Create(a *Activity) error
	GetByID(id string) (*Activity, error)
	GetByRepID(repID string) ([]*Activity, error)
	Update(a *Activity) error
}

// CustomerLookup resolves the customer name stored on an activity.
type CustomerLookup interface {
	GetByID(id string) (*customer.Customer, error)
}

// Service handles activity business logic
type Service struct {
	repo      Repository
	customers CustomerLookup
	eventBus  *events.EventBus
	logger    *slog.Logger
}

func NewService(repo Repository, customers CustomerLookup, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		customers: customers,
		eventBus:  bus,
		logger:    logger,
	}
}

// GetMyActivities returns the representative's activities, newest first.
func (s *Service) GetMyActivities(repID string) ([]*Activity, error) {
	activities, err := s.repo.GetByRepID(repID)
	if err != nil {
		s.logger.Error("failed to get activities", "error", err, "rep_id", repID)
		return nil, err
	}
	return activities, nil
}

// CreateActivity schedules a new activity for the representative.
func (s *Service) CreateActivity(repID string, dto CreateActivityDTO) (*Activity, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	priority := dto.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	customerName := ""
	if dto.CustomerID != "" {
		c, err := s.customers.GetByID(dto.CustomerID)
		if err != nil {
			s.logger.Error("customer not found for activity", "error", err, "customer_id", dto.CustomerID)
			return nil, internal.ErrCustomerNotFound
		}
		if c.RepID != repID {
			return nil, internal.ErrUnauthorizedAccess
		}
		customerName = c.Name
	}

	now := time.Now()
	a := &Activity{
		ID:            uuid.NewString(),
		RepID:         repID,
		Type:          dto.Type,
		Title:         dto.Title,
		Description:   dto.Description,
		CustomerID:    dto.CustomerID,
		CustomerName:  customerName,
		Status:        StatusScheduled,
		Priority:      priority,
		ScheduledDate: dto.ScheduledDate,
		Notes:         dto.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(a); err != nil {
		s.logger.Error("failed to create activity", "error", err, "rep_id", repID)
		return nil, err
	}

	s.logger.Info("activity created",
		"activity_id", a.ID,
		"type", a.Type,
		"rep_id", repID)
	return a, nil
}

// UpdateActivity edits an activity owned by the representative.
func (s *Service) UpdateActivity(id, repID string, dto UpdateActivityDTO) (*Activity, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	a, err := s.ownedActivity(id, repID)
	if err != nil {
		return nil, err
	}

	dto.applyTo(a)
	a.UpdatedAt = time.Now()

	if err := s.repo.Update(a); err != nil {
		s.logger.Error("failed to update activity", "error", err, "activity_id", id)
		return nil, err
	}

	return a, nil
}

// CompleteActivity performs the completion transition. Only scheduled and
// in-progress activities can complete.
func (s *Service) CompleteActivity(id, repID string, dto CompleteActivityDTO) (*Activity, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	a, err := s.ownedActivity(id, repID)
	if err != nil {
		return nil, err
	}

	if a.Status == StatusCompleted {
		return nil, internal.ErrActivityAlreadyDone
	}
	if !a.CanBeCompleted() {
		s.logger.Warn("cannot complete activity in current status",
			"activity_id", id, "status", a.Status)
		return nil, internal.ErrInvalidActivityStatus
	}

	a.Complete(dto.Duration, dto.Outcome)

	if err := s.repo.Update(a); err != nil {
		s.logger.Error("failed to complete activity", "error", err, "activity_id", id)
		return nil, err
	}

	if s.eventBus != nil {
		event := events.NewActivityCompletedEvent(a.ID, repID, a.Type)
		if err := s.eventBus.Publish(context.Background(), event); err != nil {
			s.logger.Error("failed to publish activity completed event",
				"error", err, "activity_id", a.ID)
		}
	}

	s.logger.Info("activity completed", "activity_id", id, "rep_id", repID)
	return a, nil
}

func (s *Service) ownedActivity(id, repID string) (*Activity, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("activity not found", "error", err, "activity_id", id)
		return nil, internal.ErrActivityNotFound
	}
	if a.RepID != repID {
		s.logger.Warn("access denied: activity not owned by representative",
			"activity_id", id, "rep_id", repID)
		return nil, internal.ErrUnauthorizedAccess
	}
	return a, nil
}
