// Package router wires HTTP routes to feature handlers.
package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"carrental_backend/internal/feature/auth/domain/entity"
	authhandler "carrental_backend/internal/feature/auth/transport/handler"
	carhandler "carrental_backend/internal/feature/car/transport/handler"
	customerhandler "carrental_backend/internal/feature/customer/transport/handler"
	"carrental_backend/internal/platform/http/handler"
	jwtmw "carrental_backend/internal/platform/jwt"
	"carrental_backend/internal/platform/logging"
)

// Deps are the handlers and middleware inputs the router needs.
type Deps struct {
	Auth     *authhandler.AuthHandler
	Customer *customerhandler.CustomerHandler
	Car      *carhandler.CarHandler
	Health   *handler.Health
	Verifier jwtmw.TokenVerifier
	Logger   *slog.Logger

	// CORSOrigins empty disables CORS handling.
	CORSOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if d.Logger != nil {
		r.Use(logging.RequestLogger(d.Logger))
	}
	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  d.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	// public
	r.GET("/healthz", d.Health.Handle)
	r.HEAD("/healthz", d.Health.Handle)
	r.OPTIONS("/healthz", d.Health.Handle)

	auth := r.Group("/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/verify", d.Auth.Verify)
		auth.POST("/login", d.Auth.Login)
		auth.GET("/me", jwtmw.AuthRequired(d.Verifier), d.Auth.Me)
	}

	// Only listing every customer is gated, as in the existing API.
	r.POST("/customer", d.Customer.Create)
	r.GET("/customer", jwtmw.RequireRoles(d.Verifier, entity.RoleAdmin), d.Customer.List)
	r.GET("/customer/:id", d.Customer.Get)
	r.PUT("/customer/:id", d.Customer.Update)
	r.DELETE("/customer/:id", d.Customer.Delete)

	r.POST("/cars", d.Car.Create)
	r.GET("/cars", d.Car.List)
	r.GET("/cars/:id", d.Car.Get)
	r.PUT("/cars/:id", d.Car.Update)
	r.DELETE("/cars/:id", d.Car.Delete)

	return r
}
