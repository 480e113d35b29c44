// Package handler exposes the car fleet over HTTP.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carrental_backend/internal/feature/car/domain/entity"
	"carrental_backend/internal/feature/car/transport/http/dto"
	"carrental_backend/internal/feature/car/usecase"
)

// CarUsecase is what the handler needs from the car usecase.
type CarUsecase interface {
	Create(ctx context.Context, car *entity.Car) (*entity.Car, error)
	Get(ctx context.Context, id uint) (*entity.Car, error)
	List(ctx context.Context) ([]entity.Car, error)
	Update(ctx context.Context, id uint, p usecase.CarPatch) (*entity.Car, error)
	Delete(ctx context.Context, id uint) error
}

// CarHandler serves the /cars routes.
type CarHandler struct {
	uc CarUsecase
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(uc CarUsecase) *CarHandler {
	return &CarHandler{uc: uc}
}

// Create handles POST /cars.
func (h *CarHandler) Create(c *gin.Context) {
	var req dto.CreateCarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	available := true
	if req.Availability != nil {
		available = *req.Availability
	}
	car, err := h.uc.Create(c.Request.Context(), &entity.Car{
		CarModel:     req.CarModel,
		Year:         req.Year,
		Color:        req.Color,
		RentalRate:   req.RentalRate,
		Availability: available,
		LocationID:   req.LocationID,
	})
	if err != nil {
		slog.Error("create car failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create car"})
		return
	}
	c.JSON(http.StatusCreated, toRes(car))
}

// List handles GET /cars.
func (h *CarHandler) List(c *gin.Context) {
	cars, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("list cars failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve cars"})
		return
	}
	out := make([]dto.CarRes, 0, len(cars))
	for i := range cars {
		out = append(out, toRes(&cars[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /cars/:id.
func (h *CarHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	car, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "retrieve", err)
		return
	}
	c.JSON(http.StatusOK, toRes(car))
}

// Update handles PUT /cars/:id.
func (h *CarHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateCarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	car, err := h.uc.Update(c.Request.Context(), id, usecase.CarPatch{
		CarModel:     req.CarModel,
		Year:         req.Year,
		Color:        req.Color,
		RentalRate:   req.RentalRate,
		Availability: req.Availability,
		LocationID:   req.LocationID,
	})
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, toRes(car))
}

// Delete handles DELETE /cars/:id.
func (h *CarHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Car deleted successfully"})
}

func (h *CarHandler) fail(c *gin.Context, op string, err error) {
	if errors.Is(err, usecase.ErrCarNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Car not found"})
		return
	}
	slog.Error(op+" car failed", "error", err, "path", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to " + op + " car"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid car id"})
		return 0, false
	}
	return uint(id), true
}

func toRes(car *entity.Car) dto.CarRes {
	return dto.CarRes{
		CarID:        car.ID,
		CarModel:     car.CarModel,
		Year:         car.Year,
		Color:        car.Color,
		RentalRate:   car.RentalRate,
		Availability: car.Availability,
		LocationID:   car.LocationID,
	}
}
