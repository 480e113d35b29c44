// Package usecase implements customer record management.
package usecase

import (
	"context"
	"fmt"

	"carrental_backend/internal/feature/customer/domain/entity"
)

// CustomerRepository persists customers.
// FindByID, Update and Delete return ErrCustomerNotFound for unknown ids.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	FindByID(ctx context.Context, id uint) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, id uint) error
}

// CustomerPatch lists the fields a PUT may change. Nil fields are left alone.
type CustomerPatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Address     *string
}

// CustomerUsecase manages customer records.
type CustomerUsecase struct {
	repo CustomerRepository
}

// NewCustomerUsecase creates a new CustomerUsecase.
func NewCustomerUsecase(repo CustomerRepository) *CustomerUsecase {
	return &CustomerUsecase{repo: repo}
}

// Create stores a new customer. A taken email yields ErrEmailTaken.
func (u *CustomerUsecase) Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *CustomerUsecase) Get(ctx context.Context, id uint) (*entity.Customer, error) {
	return u.repo.FindByID(ctx, id)
}

func (u *CustomerUsecase) List(ctx context.Context) ([]entity.Customer, error) {
	out, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return out, nil
}

// Update applies p to the stored customer and returns the result.
func (u *CustomerUsecase) Update(ctx context.Context, id uint, p CustomerPatch) (*entity.Customer, error) {
	c, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set(&c.FirstName, p.FirstName)
	set(&c.LastName, p.LastName)
	set(&c.Email, p.Email)
	set(&c.PhoneNumber, p.PhoneNumber)
	set(&c.Address, p.Address)

	if err := u.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *CustomerUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
