package customer

import (
	"errors"
	"time"
)

// Customer is a record assigned to a sales representative. Revenue amounts
// are whole lira.
type Customer struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	RepID         string     `json:"-" gorm:"column:rep_id;not null"`
	Name          string     `json:"name" gorm:"not null"`
	Email         string     `json:"email" gorm:"not null"`
	Phone         string     `json:"phone"`
	Company       *string    `json:"company,omitempty"`
	Address       *string    `json:"address,omitempty"`
	City          *string    `json:"city,omitempty"`
	TotalOrders   int        `json:"totalOrders" gorm:"column:total_orders"`
	TotalRevenue  int64      `json:"totalRevenue" gorm:"column:total_revenue"`
	LastOrderDate *time.Time `json:"lastOrderDate,omitempty" gorm:"column:last_order_date"`
	Status        string     `json:"status" gorm:"default:potential"`
	AssignedDate  time.Time  `json:"assignedDate" gorm:"column:assigned_date"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" gorm:"column:updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusPotential = "potential"
)

var validStatuses = map[string]bool{
	StatusActive:    true,
	StatusInactive:  true,
	StatusPotential: true,
}

func IsValidStatus(status string) bool {
	return validStatuses[status]
}

// RecordOrder rolls the customer's totals forward for a newly placed order.
func (c *Customer) RecordOrder(amount int64, orderDate time.Time) {
	c.TotalOrders++
	c.TotalRevenue += amount
	if c.LastOrderDate == nil || orderDate.After(*c.LastOrderDate) {
		d := orderDate
		c.LastOrderDate = &d
	}
	c.UpdatedAt = time.Now()
}

var ErrInvalidStatus = errors.New("invalid customer status")
