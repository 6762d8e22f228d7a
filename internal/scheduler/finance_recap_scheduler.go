package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/repository"
	"rtrw-admin-svc/pkg/logger"
)

// FinanceRecapScheduler runs the monthly finance recap job. On the
// first of each month it totals the previous month's income and
// expenses and records the recap in the scheduler log table.
type FinanceRecapScheduler struct {
	dashboardRepo    repository.DashboardRepository
	schedulerLogRepo repository.SchedulerLogRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
}

// NewFinanceRecapScheduler creates a new finance recap scheduler
func NewFinanceRecapScheduler(dashboardRepo repository.DashboardRepository, schedulerLogRepo repository.SchedulerLogRepository, logger *logger.Logger, cronExpression string) *FinanceRecapScheduler {
	// Cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &FinanceRecapScheduler{
		dashboardRepo:    dashboardRepo,
		schedulerLogRepo: schedulerLogRepo,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
	}
}

// Start registers and starts the scheduled job
func (s *FinanceRecapScheduler) Start() error {
	s.logger.Info("Starting finance recap scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling finance recap job")
	_, err := s.cron.AddFunc(s.cronExpression, s.runMonthlyRecap)
	if err != nil {
		return fmt.Errorf("failed to schedule finance recap job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Finance recap scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *FinanceRecapScheduler) Stop() {
	s.logger.Info("Stopping finance recap scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Finance recap scheduler stopped successfully")
}

// runMonthlyRecap totals the previous calendar month and logs the result
func (s *FinanceRecapScheduler) runMonthlyRecap() {
	const code = "MONTHLY_FINANCE_RECAP"
	runID := uuid.New().String()
	ctx := context.Background()

	s.logScheduler(code, runID, "Starting monthly finance recap", "START")
	s.logger.Info("Starting monthly finance recap...")

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevStart := monthStart.AddDate(0, -1, 0)

	totals, err := s.dashboardRepo.GetFinanceTotals(ctx, prevStart, monthStart)
	if err != nil {
		s.logScheduler(code, runID, fmt.Sprintf("Failed to total finance records: %v", err), "FAILED")
		s.logger.WithError(err).Error("Failed to total finance records")
		return
	}

	message := fmt.Sprintf("Recap for %s: income=%d expense=%d balance=%d",
		prevStart.Format("2006-01"), totals.Income, totals.Expense, totals.Balance)
	s.logScheduler(code, runID, message, "SUCCESS")

	s.logger.WithFields(map[string]interface{}{
		"month":   prevStart.Format("2006-01"),
		"income":  totals.Income,
		"expense": totals.Expense,
		"balance": totals.Balance,
	}).Info("Monthly finance recap completed")
}

// logScheduler writes one phase row for the current run
func (s *FinanceRecapScheduler) logScheduler(code, runID, message, status string) {
	entry := &models.SchedulerLog{
		RunID:     runID,
		Code:      code,
		Message:   message,
		Status:    status,
		CreatedAt: time.Now(),
	}

	if err := s.schedulerLogRepo.CreateSchedulerLog(entry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
	}
}
