package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/store"
)

// AnnouncementInput is the payload for creating an announcement
type AnnouncementInput struct {
	Title        string `json:"title"`
	Descriptions string `json:"descriptions"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
}

// AnnouncementUpdateInput is the payload for a partial update; nil
// fields are left untouched
type AnnouncementUpdateInput struct {
	Title        *string `json:"title"`
	Descriptions *string `json:"descriptions"`
	Priority     *string `json:"priority"`
	Status       *string `json:"status"`
}

// AnnouncementService handles announcement business operations
type AnnouncementService interface {
	List(ctx context.Context, filters map[string]interface{}) ([]models.Announcement, error)
	GetByID(ctx context.Context, id uint) (*models.Announcement, error)
	Create(ctx context.Context, input *AnnouncementInput) (*models.Announcement, error)
	Update(ctx context.Context, id uint, input *AnnouncementUpdateInput) (*models.Announcement, error)
	Delete(ctx context.Context, id uint) error
}

// announcementService implements AnnouncementService
type announcementService struct {
	collection *store.Collection[models.Announcement]
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(collection *store.Collection[models.Announcement]) AnnouncementService {
	return &announcementService{
		collection: collection,
	}
}

// List returns announcements matching the equality filters
func (s *announcementService) List(ctx context.Context, filters map[string]interface{}) ([]models.Announcement, error) {
	return s.collection.List(ctx, filters)
}

// GetByID returns one announcement or store.ErrNotFound
func (s *announcementService) GetByID(ctx context.Context, id uint) (*models.Announcement, error) {
	return s.collection.GetByID(ctx, id)
}

// Create validates the payload and inserts a new announcement
func (s *announcementService) Create(ctx context.Context, input *AnnouncementInput) (*models.Announcement, error) {
	if input.Title == "" || input.Descriptions == "" || input.Priority == "" || input.Status == "" {
		return nil, invalidf("Missing required fields: title, descriptions, priority, status")
	}
	if !models.IsOneOf(input.Priority, models.AnnouncementPriority) {
		return nil, invalidf("Invalid priority. Must be 'rendah', 'sedang', or 'tinggi'")
	}
	if !models.IsOneOf(input.Status, models.AnnouncementStatuses) {
		return nil, invalidf("Invalid status. Must be 'draft' or 'published'")
	}

	announcement := &models.Announcement{
		Title:        input.Title,
		Descriptions: input.Descriptions,
		Priority:     input.Priority,
		Status:       input.Status,
		UUID:         uuid.NewString(),
		CreatedAt:    time.Now(),
	}
	if err := s.collection.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// Update merges only the provided fields into the announcement
func (s *announcementService) Update(ctx context.Context, id uint, input *AnnouncementUpdateInput) (*models.Announcement, error) {
	changes := map[string]interface{}{}
	if input.Title != nil {
		if *input.Title == "" {
			return nil, invalidf("title cannot be empty")
		}
		changes["title"] = *input.Title
	}
	if input.Descriptions != nil {
		if *input.Descriptions == "" {
			return nil, invalidf("descriptions cannot be empty")
		}
		changes["descriptions"] = *input.Descriptions
	}
	if input.Priority != nil {
		if !models.IsOneOf(*input.Priority, models.AnnouncementPriority) {
			return nil, invalidf("Invalid priority. Must be 'rendah', 'sedang', or 'tinggi'")
		}
		changes["priority"] = *input.Priority
	}
	if input.Status != nil {
		if !models.IsOneOf(*input.Status, models.AnnouncementStatuses) {
			return nil, invalidf("Invalid status. Must be 'draft' or 'published'")
		}
		changes["status"] = *input.Status
	}
	if len(changes) == 0 {
		return nil, invalidf("no fields to update")
	}

	return s.collection.Update(ctx, id, changes)
}

// Delete removes the announcement
func (s *announcementService) Delete(ctx context.Context, id uint) error {
	return s.collection.Delete(ctx, id)
}
