package repository

import (
	"gorm.io/gorm"

	"rtrw-admin-svc/internal/models"
)

// SchedulerLogRepository defines the interface for scheduler log data operations
type SchedulerLogRepository interface {
	CreateSchedulerLog(log *models.SchedulerLog) error
}

// schedulerLogRepository implements SchedulerLogRepository
type schedulerLogRepository struct {
	db *gorm.DB
}

// NewSchedulerLogRepository creates a new instance of SchedulerLogRepository
func NewSchedulerLogRepository(db *gorm.DB) SchedulerLogRepository {
	return &schedulerLogRepository{
		db: db,
	}
}

// CreateSchedulerLog creates a new scheduler log record
func (r *schedulerLogRepository) CreateSchedulerLog(log *models.SchedulerLog) error {
	return r.db.Create(log).Error
}
