package order

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/salesdesk/crm-portal/internal"
	"github.com/salesdesk/crm-portal/internal/core/events"
	"github.com/salesdesk/crm-portal/internal/customer"
)

// Repository defines the data access methods for sales orders
type Repository interface {
	Create(o *SalesOrder) error
	GetByRepID(repID string) ([]*SalesOrder, error)
	CountForYear(year int) (int, error)
}

// CustomerLookup resolves the customer snapshot embedded in an order.
type CustomerLookup interface {
	GetByID(id string) (*customer.Customer, error)
}

// Service handles sales order business logic
type Service struct {
	repo      Repository
	customers CustomerLookup
	bus       *events.EventBus
	logger    *slog.Logger
}

func NewService(repo Repository, customers CustomerLookup, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		customers: customers,
		bus:       bus,
		logger:    logger,
	}
}

// GetMyOrders returns the representative's orders, newest first.
func (s *Service) GetMyOrders(repID string) ([]*SalesOrder, error) {
	orders, err := s.repo.GetByRepID(repID)
	if err != nil {
		s.logger.Error("failed to get orders", "error", err, "rep_id", repID)
		return nil, err
	}
	return orders, nil
}

// CreateOrder places a new pending order for one of the representative's
// customers and publishes order.created so customer totals roll forward.
func (s *Service) CreateOrder(ctx context.Context, repID string, dto CreateOrderDTO) (*SalesOrder, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	c, err := s.customers.GetByID(dto.CustomerID)
	if err != nil {
		s.logger.Error("customer not found for order", "error", err, "customer_id", dto.CustomerID)
		return nil, internal.ErrCustomerNotFound
	}
	if c.RepID != repID {
		s.logger.Warn("order denied: customer not assigned to representative",
			"customer_id", dto.CustomerID, "rep_id", repID)
		return nil, internal.ErrUnauthorizedAccess
	}

	now := time.Now()
	seq, err := s.repo.CountForYear(now.Year())
	if err != nil {
		s.logger.Error("failed to count orders for numbering", "error", err)
		return nil, err
	}

	o := &SalesOrder{
		ID:                   uuid.NewString(),
		RepID:                repID,
		OrderNumber:          FormatOrderNumber(now.Year(), seq+1),
		CustomerID:           c.ID,
		CustomerName:         c.Name,
		CustomerEmail:        c.Email,
		TotalAmount:          dto.TotalAmount,
		Status:               StatusPending,
		OrderDate:            now,
		ExpectedDeliveryDate: dto.ExpectedDeliveryDate,
		ItemCount:            dto.ItemCount,
		Notes:                dto.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Create(o); err != nil {
		s.logger.Error("failed to create order", "error", err, "rep_id", repID)
		return nil, err
	}

	s.logger.Info("order created",
		"order_id", o.ID,
		"order_number", o.OrderNumber,
		"customer_id", o.CustomerID,
		"amount", o.TotalAmount)

	if s.bus != nil {
		event := events.NewOrderCreatedEvent(o.ID, o.CustomerID, o.RepID, o.TotalAmount, o.OrderDate)
		if err := s.bus.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish order.created", "error", err, "order_id", o.ID)
		}
	}

	return o, nil
}
