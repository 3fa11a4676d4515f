package postgres

import (
	"github.com/salesdesk/crm-portal/internal/order"
	"gorm.io/gorm"
)

// OrderRepository implements the order.Repository interface using GORM
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) order.Repository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(o *order.SalesOrder) error {
	return r.db.Create(o).Error
}

func (r *OrderRepository) GetByRepID(repID string) ([]*order.SalesOrder, error) {
	var orders []*order.SalesOrder
	err := r.db.Where("rep_id = ?", repID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) CountForYear(year int) (int, error) {
	var count int64
	err := r.db.Model(&order.SalesOrder{}).
		Where("EXTRACT(YEAR FROM order_date) = ?", year).
		Count(&count).Error
	return int(count), err
}
