// Package adapters stores cars with gorm.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"carrental_backend/internal/feature/car/domain/entity"
	"carrental_backend/internal/feature/car/usecase"
)

type carGorm struct {
	db *gorm.DB
}

var _ usecase.CarRepository = (*carGorm)(nil)

// NewCarGorm creates a car repository on top of the given connection.
func NewCarGorm(db *gorm.DB) *carGorm {
	return &carGorm{db: db}
}

func (r *carGorm) Create(ctx context.Context, car *entity.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

// FindByID returns usecase.ErrCarNotFound when no row matches.
func (r *carGorm) FindByID(ctx context.Context, id uint) (*entity.Car, error) {
	var car entity.Car
	if err := r.db.WithContext(ctx).First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to find car %d: %w", id, err)
	}
	return &car, nil
}

func (r *carGorm) List(ctx context.Context) ([]entity.Car, error) {
	var out []entity.Car
	if err := r.db.WithContext(ctx).Order("car_id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return out, nil
}

// Update writes every mutable column, zero values included.
func (r *carGorm) Update(ctx context.Context, car *entity.Car) error {
	err := r.db.WithContext(ctx).Model(&entity.Car{}).Where("car_id = ?", car.ID).
		Select("car_model", "year", "color", "rental_rate", "availability", "location_id").
		Updates(car).Error
	if err != nil {
		return fmt.Errorf("failed to update car %d: %w", car.ID, err)
	}
	return nil
}

func (r *carGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Car{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete car %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCarNotFound
	}
	return nil
}
