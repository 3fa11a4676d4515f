package order

import (
	"errors"
	"time"
)

// CreateOrderDTO is the request payload for POST /crm/sales-orders.
type CreateOrderDTO struct {
	CustomerID           string     `json:"customerId"`
	TotalAmount          int64      `json:"totalAmount"`
	ItemCount            int        `json:"itemCount"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate,omitempty"`
	Notes                *string    `json:"notes,omitempty"`
}

func (d CreateOrderDTO) Validate() error {
	if d.CustomerID == "" {
		return errors.New("customerId is required")
	}
	if d.TotalAmount <= 0 {
		return errors.New("totalAmount must be greater than 0")
	}
	if d.ItemCount <= 0 {
		return errors.New("itemCount must be greater than 0")
	}
	if d.ExpectedDeliveryDate != nil && d.ExpectedDeliveryDate.Before(time.Now()) {
		return errors.New("expectedDeliveryDate cannot be in the past")
	}
	return nil
}
