package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/store"
)

// ActivityInput is the payload for scheduling an activity
type ActivityInput struct {
	ActivityName string `json:"activity_name"`
	Date         string `json:"date"`
	TimeStart    string `json:"time_start"`
	TimeEnd      string `json:"time_end"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Guarantor    string `json:"guarantor"`
	Status       string `json:"status"`
}

// ActivityUpdateInput is the payload for a partial update
type ActivityUpdateInput struct {
	ActivityName *string `json:"activity_name"`
	Date         *string `json:"date"`
	TimeStart    *string `json:"time_start"`
	TimeEnd      *string `json:"time_end"`
	Location     *string `json:"location"`
	Description  *string `json:"description"`
	Guarantor    *string `json:"guarantor"`
	Status       *string `json:"status"`
}

// ActivityService handles activity business operations
type ActivityService interface {
	List(ctx context.Context, filters map[string]interface{}) ([]models.Activity, error)
	GetByID(ctx context.Context, id uint) (*models.Activity, error)
	Create(ctx context.Context, input *ActivityInput) (*models.Activity, error)
	Update(ctx context.Context, id uint, input *ActivityUpdateInput) (*models.Activity, error)
	Delete(ctx context.Context, id uint) error
}

// activityService implements ActivityService
type activityService struct {
	collection *store.Collection[models.Activity]
}

// NewActivityService creates a new activity service
func NewActivityService(collection *store.Collection[models.Activity]) ActivityService {
	return &activityService{
		collection: collection,
	}
}

func (s *activityService) List(ctx context.Context, filters map[string]interface{}) ([]models.Activity, error) {
	return s.collection.List(ctx, filters)
}

func (s *activityService) GetByID(ctx context.Context, id uint) (*models.Activity, error) {
	return s.collection.GetByID(ctx, id)
}

func (s *activityService) Create(ctx context.Context, input *ActivityInput) (*models.Activity, error) {
	if input.ActivityName == "" || input.Date == "" {
		return nil, invalidf("Missing required fields: activity_name, date")
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, invalidf("Invalid date. Must be YYYY-MM-DD")
	}
	if input.Status == "" {
		input.Status = "planned"
	}
	if !models.IsOneOf(input.Status, models.ActivityStatuses) {
		return nil, invalidf("Invalid status. Must be 'planned', 'ongoing', 'completed', or 'cancelled'")
	}

	activity := &models.Activity{
		ActivityName: input.ActivityName,
		Date:         input.Date,
		TimeStart:    input.TimeStart,
		TimeEnd:      input.TimeEnd,
		Location:     input.Location,
		Description:  input.Description,
		Guarantor:    input.Guarantor,
		Status:       input.Status,
		UUID:         uuid.NewString(),
		CreatedAt:    time.Now(),
	}
	if err := s.collection.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *activityService) Update(ctx context.Context, id uint, input *ActivityUpdateInput) (*models.Activity, error) {
	changes := map[string]interface{}{}
	if input.ActivityName != nil {
		changes["activity_name"] = *input.ActivityName
	}
	if input.Date != nil {
		if _, err := time.Parse("2006-01-02", *input.Date); err != nil {
			return nil, invalidf("Invalid date. Must be YYYY-MM-DD")
		}
		changes["date"] = *input.Date
	}
	if input.TimeStart != nil {
		changes["time_start"] = *input.TimeStart
	}
	if input.TimeEnd != nil {
		changes["time_end"] = *input.TimeEnd
	}
	if input.Location != nil {
		changes["location"] = *input.Location
	}
	if input.Description != nil {
		changes["description"] = *input.Description
	}
	if input.Guarantor != nil {
		changes["guarantor"] = *input.Guarantor
	}
	if input.Status != nil {
		if !models.IsOneOf(*input.Status, models.ActivityStatuses) {
			return nil, invalidf("Invalid status. Must be 'planned', 'ongoing', 'completed', or 'cancelled'")
		}
		changes["status"] = *input.Status
	}
	if len(changes) == 0 {
		return nil, invalidf("no fields to update")
	}

	return s.collection.Update(ctx, id, changes)
}

func (s *activityService) Delete(ctx context.Context, id uint) error {
	return s.collection.Delete(ctx, id)
}
