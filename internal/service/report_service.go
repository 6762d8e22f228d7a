package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/store"
)

// ReportInput is the payload for filing a resident complaint
type ReportInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// ReportUpdateInput is the payload for a partial update
type ReportUpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// ReportService handles complaint report business operations
type ReportService interface {
	List(ctx context.Context, filters map[string]interface{}) ([]models.Report, error)
	GetByID(ctx context.Context, id uint) (*models.Report, error)
	Create(ctx context.Context, input *ReportInput) (*models.Report, error)
	Update(ctx context.Context, id uint, input *ReportUpdateInput) (*models.Report, error)
	Delete(ctx context.Context, id uint) error
}

// reportService implements ReportService
type reportService struct {
	collection *store.Collection[models.Report]
}

// NewReportService creates a new report service
func NewReportService(collection *store.Collection[models.Report]) ReportService {
	return &reportService{
		collection: collection,
	}
}

func (s *reportService) List(ctx context.Context, filters map[string]interface{}) ([]models.Report, error) {
	return s.collection.List(ctx, filters)
}

func (s *reportService) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	return s.collection.GetByID(ctx, id)
}

func (s *reportService) Create(ctx context.Context, input *ReportInput) (*models.Report, error) {
	if input.Title == "" || input.Description == "" {
		return nil, invalidf("Missing required fields: title, description")
	}
	if input.Priority == "" {
		input.Priority = "sedang"
	}
	if !models.IsOneOf(input.Priority, models.ReportPriority) {
		return nil, invalidf("Invalid priority. Must be 'rendah', 'sedang', or 'tinggi'")
	}
	if input.Status == "" {
		input.Status = "open"
	}
	if !models.IsOneOf(input.Status, models.ReportStatuses) {
		return nil, invalidf("Invalid status. Must be 'open', 'in-progress', 'resolved', or 'closed'")
	}

	report := &models.Report{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
		UUID:        uuid.NewString(),
		CreatedAt:   time.Now(),
	}
	if err := s.collection.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) Update(ctx context.Context, id uint, input *ReportUpdateInput) (*models.Report, error) {
	changes := map[string]interface{}{}
	if input.Title != nil {
		changes["title"] = *input.Title
	}
	if input.Description != nil {
		changes["description"] = *input.Description
	}
	if input.Priority != nil {
		if !models.IsOneOf(*input.Priority, models.ReportPriority) {
			return nil, invalidf("Invalid priority. Must be 'rendah', 'sedang', or 'tinggi'")
		}
		changes["priority"] = *input.Priority
	}
	if input.Status != nil {
		if !models.IsOneOf(*input.Status, models.ReportStatuses) {
			return nil, invalidf("Invalid status. Must be 'open', 'in-progress', 'resolved', or 'closed'")
		}
		changes["status"] = *input.Status
	}
	if len(changes) == 0 {
		return nil, invalidf("no fields to update")
	}

	return s.collection.Update(ctx, id, changes)
}

func (s *reportService) Delete(ctx context.Context, id uint) error {
	return s.collection.Delete(ctx, id)
}
