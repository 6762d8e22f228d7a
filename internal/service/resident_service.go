package service

import (
	"context"
	"time"

	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/store"
)

// ResidentInput is the payload for registering a resident
type ResidentInput struct {
	NIK     string `json:"nik"`
	Name    string `json:"name"`
	Address string `json:"address"`
	RT      string `json:"rt"`
	RW      string `json:"rw"`
	Phone   string `json:"phone"`
	Status  string `json:"status"`
}

// ResidentUpdateInput is the payload for a partial update
type ResidentUpdateInput struct {
	NIK     *string `json:"nik"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
	RT      *string `json:"rt"`
	RW      *string `json:"rw"`
	Phone   *string `json:"phone"`
	Status  *string `json:"status"`
}

// ResidentService handles resident business operations
type ResidentService interface {
	List(ctx context.Context, filters map[string]interface{}) ([]models.Resident, error)
	GetByID(ctx context.Context, id uint) (*models.Resident, error)
	Create(ctx context.Context, input *ResidentInput) (*models.Resident, error)
	Update(ctx context.Context, id uint, input *ResidentUpdateInput) (*models.Resident, error)
	Delete(ctx context.Context, id uint) error
}

// residentService implements ResidentService
type residentService struct {
	collection *store.Collection[models.Resident]
}

// NewResidentService creates a new resident service
func NewResidentService(collection *store.Collection[models.Resident]) ResidentService {
	return &residentService{
		collection: collection,
	}
}

func (s *residentService) List(ctx context.Context, filters map[string]interface{}) ([]models.Resident, error) {
	return s.collection.List(ctx, filters)
}

func (s *residentService) GetByID(ctx context.Context, id uint) (*models.Resident, error) {
	return s.collection.GetByID(ctx, id)
}

func (s *residentService) Create(ctx context.Context, input *ResidentInput) (*models.Resident, error) {
	if input.NIK == "" || input.Name == "" || input.Address == "" {
		return nil, invalidf("Missing required fields: nik, name, address")
	}
	if input.Status == "" {
		input.Status = "aktif"
	}
	if !models.IsOneOf(input.Status, models.ResidentStatuses) {
		return nil, invalidf("Invalid status. Must be 'aktif', 'pindah', or 'meninggal'")
	}

	resident := &models.Resident{
		NIK:       input.NIK,
		Name:      input.Name,
		Address:   input.Address,
		RT:        input.RT,
		RW:        input.RW,
		Phone:     input.Phone,
		Status:    input.Status,
		CreatedAt: time.Now(),
	}
	if err := s.collection.Create(ctx, resident); err != nil {
		return nil, err
	}
	return resident, nil
}

func (s *residentService) Update(ctx context.Context, id uint, input *ResidentUpdateInput) (*models.Resident, error) {
	changes := map[string]interface{}{}
	if input.NIK != nil {
		changes["nik"] = *input.NIK
	}
	if input.Name != nil {
		changes["name"] = *input.Name
	}
	if input.Address != nil {
		changes["address"] = *input.Address
	}
	if input.RT != nil {
		changes["rt"] = *input.RT
	}
	if input.RW != nil {
		changes["rw"] = *input.RW
	}
	if input.Phone != nil {
		changes["phone"] = *input.Phone
	}
	if input.Status != nil {
		if !models.IsOneOf(*input.Status, models.ResidentStatuses) {
			return nil, invalidf("Invalid status. Must be 'aktif', 'pindah', or 'meninggal'")
		}
		changes["status"] = *input.Status
	}
	if len(changes) == 0 {
		return nil, invalidf("no fields to update")
	}

	return s.collection.Update(ctx, id, changes)
}

func (s *residentService) Delete(ctx context.Context, id uint) error {
	return s.collection.Delete(ctx, id)
}
