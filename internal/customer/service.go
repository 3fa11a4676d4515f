package customer

import (
	"log/slog"
	"time"

	"github.com/salesdesk/crm-portal/internal"
)

// Repository defines the data access methods for customers
type Repository interface {
	GetAssigned(repID string) ([]*Customer, error)
	GetByID(id string) (*Customer, error)
	Update(c *Customer) error
}

// Service handles customer business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetAssignedCustomers returns the customers assigned to a representative.
func (s *Service) GetAssignedCustomers(repID string) ([]*Customer, error) {
	customers, err := s.repo.GetAssigned(repID)
	if err != nil {
		s.logger.Error("failed to get assigned customers", "error", err, "rep_id", repID)
		return nil, err
	}
	return customers, nil
}

// UpdateCustomer applies an update to a customer owned by the representative.
func (s *Service) UpdateCustomer(id, repID string, dto UpdateCustomerDTO) (*Customer, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	c, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("customer not found for update", "error", err, "customer_id", id)
		return nil, internal.ErrCustomerNotFound
	}

	if c.RepID != repID {
		s.logger.Warn("update denied: customer not assigned to representative",
			"customer_id", id, "rep_id", repID)
		return nil, internal.ErrUnauthorizedAccess
	}

	dto.applyTo(c)
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(c); err != nil {
		s.logger.Error("failed to update customer", "error", err, "customer_id", id)
		return nil, err
	}

	s.logger.Info("customer updated", "customer_id", id, "rep_id", repID)
	return c, nil
}

// RecordOrder updates a customer's order totals; invoked from the
// order.created event subscription.
func (s *Service) RecordOrder(customerID string, amount int64, orderDate time.Time) error {
	c, err := s.repo.GetByID(customerID)
	if err != nil {
		s.logger.Error("customer not found for order rollup", "error", err, "customer_id", customerID)
		return internal.ErrCustomerNotFound
	}

	c.RecordOrder(amount, orderDate)

	if err := s.repo.Update(c); err != nil {
		s.logger.Error("failed to roll order into customer totals", "error", err, "customer_id", customerID)
		return err
	}

	s.logger.Info("customer totals updated from order",
		"customer_id", customerID,
		"total_orders", c.TotalOrders,
		"total_revenue", c.TotalRevenue)
	return nil
}
