// Package adapters stores customers with gorm.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"carrental_backend/internal/feature/customer/domain/entity"
	"carrental_backend/internal/feature/customer/usecase"
	platformdb "carrental_backend/internal/platform/db"
)

type customerGorm struct {
	db *gorm.DB
}

var _ usecase.CustomerRepository = (*customerGorm)(nil)

// NewCustomerGorm returns a gorm-backed CustomerRepository.
func NewCustomerGorm(db *gorm.DB) *customerGorm {
	return &customerGorm{db: db}
}

// Create inserts c. A unique-key violation on email becomes usecase.ErrEmailTaken.
func (r *customerGorm) Create(ctx context.Context, c *entity.Customer) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if platformdb.IsDuplicateKey(err) {
			return usecase.ErrEmailTaken
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *customerGorm) FindByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer %d: %w", id, err)
	}
	return &c, nil
}

func (r *customerGorm) List(ctx context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	if err := r.db.WithContext(ctx).Order("customer_id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Update writes the mutable columns of an existing customer.
func (r *customerGorm) Update(ctx context.Context, c *entity.Customer) error {
	res := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("customer_id = ?", c.ID).
		Select("first_name", "last_name", "email", "phone_number", "address").
		Updates(c)
	if res.Error != nil {
		if platformdb.IsDuplicateKey(res.Error) {
			return usecase.ErrEmailTaken
		}
		return fmt.Errorf("failed to update customer %d: %w", c.ID, res.Error)
	}
	// RowsAffected is not checked: MySQL reports 0 for an unchanged row.
	return nil
}

func (r *customerGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Customer{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCustomerNotFound
	}
	return nil
}
