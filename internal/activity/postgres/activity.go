package postgres

import (
	"time"

	"github.com/salesdesk/crm-portal/internal"
	"github.com/salesdesk/crm-portal/internal/activity"
	"gorm.io/gorm"
)

// ActivityRepository implements the activity.Repository interface using GORM
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) activity.Repository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(a *activity.Activity) error {
	return r.db.Create(a).Error
}

func (r *ActivityRepository) GetByID(id string) (*activity.Activity, error) {
	var a activity.Activity
	err := r.db.Where("id = ?", id).First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrActivityNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *ActivityRepository) GetByRepID(repID string) ([]*activity.Activity, error) {
	var activities []*activity.Activity
	err := r.db.Where("rep_id = ?", repID).
		Order("scheduled_date DESC").
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) Update(a *activity.Activity) error {
	a.UpdatedAt = time.Now()
	return r.db.Save(a).Error
}
