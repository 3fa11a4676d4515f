package order

import (
	"fmt"
	"time"
)

// SalesOrder is an order placed by a representative on behalf of a customer.
// Amounts are whole lira.
type SalesOrder struct {
	ID                   string     `json:"id" gorm:"primaryKey"`
	RepID                string     `json:"-" gorm:"column:rep_id;not null"`
	OrderNumber          string     `json:"orderNumber" gorm:"column:order_number;uniqueIndex;not null"`
	CustomerID           string     `json:"customerId" gorm:"column:customer_id;not null"`
	CustomerName         string     `json:"customerName" gorm:"column:customer_name"`
	CustomerEmail        string     `json:"customerEmail" gorm:"column:customer_email"`
	TotalAmount          int64      `json:"totalAmount" gorm:"column:total_amount;not null"`
	Status               string     `json:"status" gorm:"default:pending"`
	OrderDate            time.Time  `json:"orderDate" gorm:"column:order_date"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate,omitempty" gorm:"column:expected_delivery_date"`
	ActualDeliveryDate   *time.Time `json:"actualDeliveryDate,omitempty" gorm:"column:actual_delivery_date"`
	ItemCount            int        `json:"itemCount" gorm:"column:item_count"`
	Notes                *string    `json:"notes,omitempty"`
	CreatedAt            time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" gorm:"column:updated_at"`
}

func (SalesOrder) TableName() string {
	return "sales_orders"
}

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusConfirmed:  true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

func IsValidStatus(status string) bool {
	return validStatuses[status]
}

// FormatOrderNumber renders the SO-<year>-<seq> order number.
func FormatOrderNumber(year, seq int) string {
	return fmt.Sprintf("SO-%d-%03d", year, seq)
}
