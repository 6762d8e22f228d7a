package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/store"
)

// MailInput is the payload for filing a mail request
type MailInput struct {
	MailNumber   string `json:"mail_number"`
	MailCategory string `json:"mail_category"`
	Applicant    string `json:"applicant"`
	Status       string `json:"status"`
}

// MailUpdateInput is the payload for a partial update
type MailUpdateInput struct {
	MailNumber   *string `json:"mail_number"`
	MailCategory *string `json:"mail_category"`
	Applicant    *string `json:"applicant"`
	Status       *string `json:"status"`
}

// MailService handles mail request business operations
type MailService interface {
	List(ctx context.Context, filters map[string]interface{}) ([]models.MailRequest, error)
	GetByID(ctx context.Context, id uint) (*models.MailRequest, error)
	Create(ctx context.Context, input *MailInput) (*models.MailRequest, error)
	Update(ctx context.Context, id uint, input *MailUpdateInput) (*models.MailRequest, error)
	Delete(ctx context.Context, id uint) error
}

// mailService implements MailService
type mailService struct {
	collection *store.Collection[models.MailRequest]
}

// NewMailService creates a new mail service
func NewMailService(collection *store.Collection[models.MailRequest]) MailService {
	return &mailService{
		collection: collection,
	}
}

func (s *mailService) List(ctx context.Context, filters map[string]interface{}) ([]models.MailRequest, error) {
	return s.collection.List(ctx, filters)
}

func (s *mailService) GetByID(ctx context.Context, id uint) (*models.MailRequest, error) {
	return s.collection.GetByID(ctx, id)
}

func (s *mailService) Create(ctx context.Context, input *MailInput) (*models.MailRequest, error) {
	if input.MailNumber == "" || input.MailCategory == "" || input.Applicant == "" {
		return nil, invalidf("Missing required fields: mail_number, mail_category, applicant")
	}
	// new requests start as pending unless stated otherwise
	if input.Status == "" {
		input.Status = "pending"
	}
	if !models.IsOneOf(input.Status, models.MailStatuses) {
		return nil, invalidf("Invalid status. Must be 'pending', 'diproses', 'selesai', or 'ditolak'")
	}

	mail := &models.MailRequest{
		MailNumber:   input.MailNumber,
		MailCategory: input.MailCategory,
		Applicant:    input.Applicant,
		Status:       input.Status,
		UUID:         uuid.NewString(),
		CreatedAt:    time.Now(),
	}
	if err := s.collection.Create(ctx, mail); err != nil {
		return nil, err
	}
	return mail, nil
}

func (s *mailService) Update(ctx context.Context, id uint, input *MailUpdateInput) (*models.MailRequest, error) {
	changes := map[string]interface{}{}
	if input.MailNumber != nil {
		changes["mail_number"] = *input.MailNumber
	}
	if input.MailCategory != nil {
		changes["mail_category"] = *input.MailCategory
	}
	if input.Applicant != nil {
		changes["applicant"] = *input.Applicant
	}
	if input.Status != nil {
		if !models.IsOneOf(*input.Status, models.MailStatuses) {
			return nil, invalidf("Invalid status. Must be 'pending', 'diproses', 'selesai', or 'ditolak'")
		}
		changes["status"] = *input.Status
	}
	if len(changes) == 0 {
		return nil, invalidf("no fields to update")
	}

	return s.collection.Update(ctx, id, changes)
}

func (s *mailService) Delete(ctx context.Context, id uint) error {
	return s.collection.Delete(ctx, id)
}
