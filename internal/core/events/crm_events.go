package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeOrderCreated      = "order.created"
	EventTypeActivityCompleted = "activity.completed"
)

// OrderCreatedEvent fires after a sales order is persisted; subscribers roll
// the amounts into customer totals.
type OrderCreatedEvent struct {
	BaseEvent
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	RepID      string    `json:"rep_id"`
	Amount     int64     `json:"amount"`
	OrderDate  time.Time `json:"order_date"`
}

func NewOrderCreatedEvent(orderID, customerID, repID string, amount int64, orderDate time.Time) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeOrderCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"order_id":    orderID,
				"customer_id": customerID,
				"rep_id":      repID,
				"amount":      amount,
				"order_date":  orderDate,
			},
		},
		OrderID:    orderID,
		CustomerID: customerID,
		RepID:      repID,
		Amount:     amount,
		OrderDate:  orderDate,
	}
}

// ActivityCompletedEvent fires after the completion transition commits.
type ActivityCompletedEvent struct {
	BaseEvent
	ActivityID   string `json:"activity_id"`
	RepID        string `json:"rep_id"`
	ActivityType string `json:"activity_type"`
}

func NewActivityCompletedEvent(activityID, repID, activityType string) *ActivityCompletedEvent {
	return &ActivityCompletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeActivityCompleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"activity_id":   activityID,
				"rep_id":        repID,
				"activity_type": activityType,
			},
		},
		ActivityID:   activityID,
		RepID:        repID,
		ActivityType: activityType,
	}
}
