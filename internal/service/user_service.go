package service

import (
	"context"
	"strings"
	"time"

	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/store"
	"rtrw-admin-svc/pkg/logger"
)

// UserInput is the payload for creating a user account
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

// UserUpdateInput is the payload for a partial update. A non-nil
// Password is re-hashed before storage.
type UserUpdateInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status"`
}

// UserService handles user account management
type UserService interface {
	List(ctx context.Context, filters map[string]interface{}) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, input *UserInput) (*models.User, error)
	Update(ctx context.Context, id uint, input *UserUpdateInput) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

// userService implements UserService
type userService struct {
	collection *store.Collection[models.User]
	logger     *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(collection *store.Collection[models.User], logger *logger.Logger) UserService {
	return &userService{
		collection: collection,
		logger:     logger,
	}
}

func (s *userService) List(ctx context.Context, filters map[string]interface{}) ([]models.User, error) {
	return s.collection.List(ctx, filters)
}

func (s *userService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.collection.GetByID(ctx, id)
}

// Create validates the account payload, hashes the password and inserts
// the new user
func (s *userService) Create(ctx context.Context, input *UserInput) (*models.User, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return nil, invalidf("Missing required fields: name, email, password, role")
	}
	if !strings.Contains(input.Email, "@") {
		return nil, invalidf("Invalid email address")
	}
	if len(input.Password) < 6 {
		return nil, invalidf("Password too short (min 6)")
	}
	if !models.IsOneOf(input.Role, models.UserRoles) {
		return nil, invalidf("Invalid role. Must be 'super-admin', 'admin', or 'pengurus'")
	}
	if input.Status == "" {
		input.Status = "aktif"
	}
	if !models.IsOneOf(input.Status, models.UserStatuses) {
		return nil, invalidf("Invalid status. Must be 'aktif' or 'nonaktif'")
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  hashed,
		Role:      input.Role,
		Phone:     input.Phone,
		Status:    input.Status,
		CreatedAt: time.Now(),
	}
	if err := s.collection.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User account created")

	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, input *UserUpdateInput) (*models.User, error) {
	changes := map[string]interface{}{}
	if input.Name != nil {
		changes["name"] = *input.Name
	}
	if input.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*input.Email))
		if !strings.Contains(email, "@") {
			return nil, invalidf("Invalid email address")
		}
		changes["email"] = email
	}
	if input.Password != nil {
		if len(*input.Password) < 6 {
			return nil, invalidf("Password too short (min 6)")
		}
		hashed, err := HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		changes["password"] = hashed
	}
	if input.Role != nil {
		if !models.IsOneOf(*input.Role, models.UserRoles) {
			return nil, invalidf("Invalid role. Must be 'super-admin', 'admin', or 'pengurus'")
		}
		changes["role"] = *input.Role
	}
	if input.Phone != nil {
		changes["phone"] = *input.Phone
	}
	if input.Status != nil {
		if !models.IsOneOf(*input.Status, models.UserStatuses) {
			return nil, invalidf("Invalid status. Must be 'aktif' or 'nonaktif'")
		}
		changes["status"] = *input.Status
	}
	if len(changes) == 0 {
		return nil, invalidf("no fields to update")
	}

	return s.collection.Update(ctx, id, changes)
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	return s.collection.Delete(ctx, id)
}
