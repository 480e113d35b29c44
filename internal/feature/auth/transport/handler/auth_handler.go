// Package handler provides the HTTP handlers of the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carrental_backend/internal/feature/auth/domain/entity"
	"carrental_backend/internal/feature/auth/transport/http/dto"
	"carrental_backend/internal/feature/auth/usecase"
	jwtmw "carrental_backend/internal/platform/jwt"
)

// AuthUsecase is the workflow the handler drives.
// Following Go convention, the consumer defines the interface.
type AuthUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	Verify(ctx context.Context, email, code string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
}

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /auth/register.
//   - 400 on a malformed body or an email that is already registered
//   - 201 with the public user view on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "invalid request"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.fail(c, "register", req.Email, err)
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterRes{
		Message: "User created. Verification code sent to email.",
		User: dto.RegisteredUser{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	})
}

// Verify handles POST /auth/verify.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("verify validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "invalid request"})
		return
	}

	user, err := h.auth.Verify(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		h.fail(c, "verify", req.Email, err)
		return
	}

	slog.Info("user verified", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageRes{Message: "User verified successfully"})
}

// Login handles POST /auth/login and returns a bearer token on success.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageRes{Message: "invalid request"})
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, "login", req.Email, err)
		return
	}

	slog.Info("user login successful", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{
		Message:   "Login successful",
		Token:     res.Token,
		ExpiresIn: int64(res.ExpiresIn / time.Second),
		User: dto.LoggedInUser{
			ID:        res.User.ID,
			FirstName: res.User.FirstName,
			LastName:  res.User.LastName,
			Email:     res.User.Email,
			Role:      string(res.User.Role),
		},
	})
}

// Me handles GET /auth/me. It must sit behind jwtmw.AuthRequired.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := jwtmw.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageRes{Message: "Unauthorized"})
		return
	}

	res := dto.MeRes{
		UserID:    claims.UserID,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      string(claims.Role),
	}
	if claims.ExpiresAt != nil {
		res.ExpiresAt = claims.ExpiresAt.Unix()
	}
	c.JSON(http.StatusOK, res)
}

// fail maps workflow errors to a status and a short message.
// Anything unexpected is logged and reported as 500 without details.
func (h *AuthHandler) fail(c *gin.Context, op, email string, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error(op+" failed", "error", err, "email", email, "remote_addr", c.ClientIP())
	} else {
		slog.Warn(op+" rejected", "reason", msg, "email", email, "remote_addr", c.ClientIP())
	}
	c.JSON(status, dto.MessageRes{Message: msg})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, usecase.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, usecase.ErrInvalidCode):
		return http.StatusBadRequest, "Invalid verification code"
	case errors.Is(err, usecase.ErrNotVerified):
		return http.StatusForbidden, "Account not verified"
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
