package postgres

import (
	"github.com/salesdesk/crm-portal/internal/target"
	"gorm.io/gorm"
)

// TargetRepository implements the target.Repository interface using GORM
type TargetRepository struct {
	db *gorm.DB
}

func NewTargetRepository(db *gorm.DB) target.Repository {
	return &TargetRepository{db: db}
}

func (r *TargetRepository) GetByRepID(repID string) ([]*target.SalesTarget, error) {
	var targets []*target.SalesTarget
	err := r.db.Where("rep_id = ?", repID).
		Order("end_date ASC").
		Find(&targets).Error
	return targets, err
}
