package postgres

import (
	"time"

	"github.com/salesdesk/crm-portal/internal"
	"github.com/salesdesk/crm-portal/internal/customer"
	"gorm.io/gorm"
)

// CustomerRepository implements the customer.Repository interface using GORM
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetAssigned(repID string) ([]*customer.Customer, error) {
	var customers []*customer.Customer
	err := r.db.Where("rep_id = ?", repID).
		Order("assigned_date DESC").
		Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) GetByID(id string) (*customer.Customer, error) {
	var c customer.Customer
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Update(c *customer.Customer) error {
	c.UpdatedAt = time.Now()
	return r.db.Save(c).Error
}
