// Package adapters provides the repository implementations of the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/auth/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/auth/usecase"
)

// userGorm is the GORM implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// userGorm implements usecase.UserRepository; verified at compile time.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new userGorm on the given gorm.DB connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create adds a user to the database. It returns
// usecase.ErrEmailAlreadyExists when a user with the same email exists.
// Requires TranslateError on the gorm connection so unique violations map to
// gorm.ErrDuplicatedKey across drivers.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address. It returns
// usecase.ErrUserNotFound when no user matches.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID. It returns usecase.ErrUserNotFound when no
// user matches.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
