package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/store"
)

// SecurityInput is the payload for filing a security incident report
type SecurityInput struct {
	Date         string `json:"date"`
	Descriptions string `json:"descriptions"`
	Location     string `json:"location"`
	Reporter     string `json:"reporter"`
	Status       string `json:"status"`
}

// SecurityUpdateInput is the payload for a partial update
type SecurityUpdateInput struct {
	Date         *string `json:"date"`
	Descriptions *string `json:"descriptions"`
	Location     *string `json:"location"`
	Reporter     *string `json:"reporter"`
	Status       *string `json:"status"`
}

// SecurityService handles security report business operations
type SecurityService interface {
	List(ctx context.Context, filters map[string]interface{}) ([]models.SecurityReport, error)
	GetByID(ctx context.Context, id uint) (*models.SecurityReport, error)
	Create(ctx context.Context, input *SecurityInput) (*models.SecurityReport, error)
	Update(ctx context.Context, id uint, input *SecurityUpdateInput) (*models.SecurityReport, error)
	Delete(ctx context.Context, id uint) error
}

// securityService implements SecurityService
type securityService struct {
	collection *store.Collection[models.SecurityReport]
}

// NewSecurityService creates a new security service
func NewSecurityService(collection *store.Collection[models.SecurityReport]) SecurityService {
	return &securityService{
		collection: collection,
	}
}

func (s *securityService) List(ctx context.Context, filters map[string]interface{}) ([]models.SecurityReport, error) {
	return s.collection.List(ctx, filters)
}

func (s *securityService) GetByID(ctx context.Context, id uint) (*models.SecurityReport, error) {
	return s.collection.GetByID(ctx, id)
}

func (s *securityService) Create(ctx context.Context, input *SecurityInput) (*models.SecurityReport, error) {
	if input.Date == "" || input.Descriptions == "" || input.Reporter == "" {
		return nil, invalidf("Missing required fields: date, descriptions, reporter")
	}
	if input.Status == "" {
		input.Status = "open"
	}
	if !models.IsOneOf(input.Status, models.SecurityStatuses) {
		return nil, invalidf("Invalid status. Must be 'open', 'in-progress', or 'resolved'")
	}

	report := &models.SecurityReport{
		Date:         input.Date,
		Descriptions: input.Descriptions,
		Location:     input.Location,
		Reporter:     input.Reporter,
		Status:       input.Status,
		UUID:         uuid.NewString(),
		CreatedAt:    time.Now(),
	}
	if err := s.collection.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *securityService) Update(ctx context.Context, id uint, input *SecurityUpdateInput) (*models.SecurityReport, error) {
	changes := map[string]interface{}{}
	if input.Date != nil {
		changes["date"] = *input.Date
	}
	if input.Descriptions != nil {
		changes["descriptions"] = *input.Descriptions
	}
	if input.Location != nil {
		changes["location"] = *input.Location
	}
	if input.Reporter != nil {
		changes["reporter"] = *input.Reporter
	}
	if input.Status != nil {
		if !models.IsOneOf(*input.Status, models.SecurityStatuses) {
			return nil, invalidf("Invalid status. Must be 'open', 'in-progress', or 'resolved'")
		}
		changes["status"] = *input.Status
	}
	if len(changes) == 0 {
		return nil, invalidf("no fields to update")
	}

	return s.collection.Update(ctx, id, changes)
}

func (s *securityService) Delete(ctx context.Context, id uint) error {
	return s.collection.Delete(ctx, id)
}
