package service

import (
	"context"
	"time"

	"rtrw-admin-svc/internal/models/response"
	"rtrw-admin-svc/internal/repository"
	"rtrw-admin-svc/pkg/logger"
)

// DashboardService aggregates the counters for the dashboard landing page
type DashboardService interface {
	GetStats(ctx context.Context) (*response.DashboardStatsResponse, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	logger        *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		logger:        logger,
	}
}

// GetStats collects entity counters and the current month's finance totals
func (s *dashboardService) GetStats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	stats := &response.DashboardStatsResponse{}

	var err error
	if stats.TotalResidents, err = s.dashboardRepo.CountAll(ctx, "rtrw_residents"); err != nil {
		return nil, err
	}
	if stats.ActiveResidents, err = s.dashboardRepo.CountByStatus(ctx, "rtrw_residents", "aktif"); err != nil {
		return nil, err
	}
	if stats.PendingMails, err = s.dashboardRepo.CountByStatus(ctx, "rtrw_mail_managements", "pending"); err != nil {
		return nil, err
	}
	if stats.OpenSecurityReports, err = s.dashboardRepo.CountByStatus(ctx, "rtrw_securities", "open"); err != nil {
		return nil, err
	}
	if stats.OpenReports, err = s.dashboardRepo.CountByStatus(ctx, "rtrw_reports", "open"); err != nil {
		return nil, err
	}
	if stats.PublishedAnnouncements, err = s.dashboardRepo.CountByStatus(ctx, "rtrw_announcements", "published"); err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	totals, err := s.dashboardRepo.GetFinanceTotals(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	stats.MonthFinance = *totals

	s.logger.WithField("total_residents", stats.TotalResidents).Debug("Dashboard stats collected")

	return stats, nil
}
