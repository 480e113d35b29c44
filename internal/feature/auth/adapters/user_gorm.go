// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"carrental_backend/internal/feature/auth/domain/entity"
	"carrental_backend/internal/feature/auth/usecase"
	platformdb "carrental_backend/internal/platform/db"
)

// userGorm is the GORM implementation of usecase.UserRepository.
// It works against Postgres, MySQL and SQLite.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a credential store on top of the given connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. A unique-key violation on email is reported as
// usecase.ErrEmailAlreadyExists so concurrent registrations cannot overwrite each other.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if platformdb.IsDuplicateKey(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail returns the user whose email matches exactly.
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

// MarkVerified flips is_verified and clears the code in one conditional UPDATE.
// The row only matches while it is still pending with this exact code, so
// concurrent callers holding the same code cannot both succeed.
func (r *userGorm) MarkVerified(ctx context.Context, email, code string) (*entity.User, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ? AND is_verified = ? AND verification_code = ?", email, false, code).
		Updates(map[string]any{
			"is_verified":       true,
			"verification_code": nil,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to mark user verified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByEmail(ctx, email); err != nil {
			return nil, err
		}
		return nil, usecase.ErrInvalidCode
	}
	return r.FindByEmail(ctx, email)
}
