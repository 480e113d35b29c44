// Package handler exposes customer records over HTTP.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carrental_backend/internal/feature/customer/domain/entity"
	"carrental_backend/internal/feature/customer/transport/http/dto"
	"carrental_backend/internal/feature/customer/usecase"
)

// CustomerUsecase is defined by the consumer, following Go convention.
type CustomerUsecase interface {
	Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	Get(ctx context.Context, id uint) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
	Update(ctx context.Context, id uint, p usecase.CustomerPatch) (*entity.Customer, error)
	Delete(ctx context.Context, id uint) error
}

// CustomerHandler serves the /customer routes.
type CustomerHandler struct {
	uc CustomerUsecase
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(uc CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create handles POST /customer.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	created, err := h.uc.Create(c.Request.Context(), &entity.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, toRes(created))
}

// List handles GET /customer. The router restricts it to admins.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.uc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	out := make([]dto.CustomerRes, 0, len(customers))
	for i := range customers {
		out = append(out, toRes(&customers[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /customer/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cust, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, toRes(cust))
}

// Update handles PUT /customer/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), id, usecase.CustomerPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, toRes(updated))
}

// Delete handles DELETE /customer/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

func (h *CustomerHandler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
	case errors.Is(err, usecase.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
	default:
		slog.Error("customer "+op+" failed", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to " + op + " customer"})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid customer id"})
		return 0, false
	}
	return uint(id), true
}

func toRes(c *entity.Customer) dto.CustomerRes {
	return dto.CustomerRes{
		CustomerID:  c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
	}
}
