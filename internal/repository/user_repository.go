package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/store"
)

// UserRepository defines the interface for user lookups the credential
// authenticator needs beyond the generic accessor
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByEmail retrieves the user whose email matches. Email carries a
// unique index, so at most one row can match.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("select from rtrw_users: %w", err)
	}
	return &user, nil
}
