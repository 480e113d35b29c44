// Package usecase implements fleet management for cars.
package usecase

import (
	"context"
	"fmt"

	"carrental_backend/internal/feature/car/domain/entity"
)

// CarRepository persists cars. Lookups by an unknown id return ErrCarNotFound.
type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	FindByID(ctx context.Context, id uint) (*entity.Car, error)
	List(ctx context.Context) ([]entity.Car, error)
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id uint) error
}

// CarPatch holds the fields a PUT may change. Nil fields are left alone.
type CarPatch struct {
	CarModel     *string
	Year         *int
	Color        *string
	RentalRate   *float64
	Availability *bool
	LocationID   *uint
}

// CarUsecase manages the fleet catalogue.
type CarUsecase struct {
	repo CarRepository
}

// NewCarUsecase creates a new CarUsecase.
func NewCarUsecase(repo CarRepository) *CarUsecase {
	return &CarUsecase{repo: repo}
}

// Create stores a new car and returns it with its assigned ID.
func (u *CarUsecase) Create(ctx context.Context, car *entity.Car) (*entity.Car, error) {
	if err := u.repo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}
	return car, nil
}

func (u *CarUsecase) Get(ctx context.Context, id uint) (*entity.Car, error) {
	return u.repo.FindByID(ctx, id)
}

func (u *CarUsecase) List(ctx context.Context) ([]entity.Car, error) {
	return u.repo.List(ctx)
}

// Update loads the car, applies p and writes it back.
func (u *CarUsecase) Update(ctx context.Context, id uint, p CarPatch) (*entity.Car, error) {
	car, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.CarModel != nil {
		car.CarModel = *p.CarModel
	}
	if p.Year != nil {
		car.Year = *p.Year
	}
	if p.Color != nil {
		car.Color = *p.Color
	}
	if p.RentalRate != nil {
		car.RentalRate = *p.RentalRate
	}
	if p.Availability != nil {
		car.Availability = *p.Availability
	}
	if p.LocationID != nil {
		car.LocationID = p.LocationID
	}

	if err := u.repo.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// Delete removes a car. It returns ErrCarNotFound for an unknown ID.
func (u *CarUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
