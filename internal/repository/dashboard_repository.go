package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rtrw-admin-svc/internal/models/response"
)

// DashboardRepository defines the interface for dashboard aggregate queries
type DashboardRepository interface {
	CountByStatus(ctx context.Context, table, status string) (int64, error)
	CountAll(ctx context.Context, table string) (int64, error)
	GetFinanceTotals(ctx context.Context, from, to time.Time) (*response.FinanceTotals, error)
}

// dashboardRepository implements DashboardRepository
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// CountByStatus counts rows in table whose status column equals status
func (r *dashboardRepository) CountByStatus(ctx context.Context, table, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(table).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountAll counts all rows in table
func (r *dashboardRepository) CountAll(ctx context.Context, table string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(table).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetFinanceTotals sums income and expense amounts over [from, to)
func (r *dashboardRepository) GetFinanceTotals(ctx context.Context, from, to time.Time) (*response.FinanceTotals, error) {
	var totals response.FinanceTotals

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE finance_category = 'pemasukan'), 0) AS income,
			COALESCE(SUM(amount) FILTER (WHERE finance_category = 'pengeluaran'), 0) AS expense
		FROM rtrw_finances
		WHERE created_at >= ? AND created_at < ?
	`

	err := r.db.WithContext(ctx).Raw(query, from, to).Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	totals.Balance = totals.Income - totals.Expense
	return &totals, nil
}
