package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"carrental_backend/internal/app/router"
	authadapters "carrental_backend/internal/feature/auth/adapters"
	authentity "carrental_backend/internal/feature/auth/domain/entity"
	authhandler "carrental_backend/internal/feature/auth/transport/handler"
	authusecase "carrental_backend/internal/feature/auth/usecase"
	carentity "carrental_backend/internal/feature/car/domain/entity"
	carhandler "carrental_backend/internal/feature/car/transport/handler"
	carusecase "carrental_backend/internal/feature/car/usecase"
	customeradapters "carrental_backend/internal/feature/customer/adapters"
	customerentity "carrental_backend/internal/feature/customer/domain/entity"
	customerhandler "carrental_backend/internal/feature/customer/transport/handler"
	customerusecase "carrental_backend/internal/feature/customer/usecase"
	"carrental_backend/internal/platform/config"
	"carrental_backend/internal/platform/http/handler"
	jwtmw "carrental_backend/internal/platform/jwt"
	"carrental_backend/internal/platform/password"
	"carrental_backend/internal/platform/verifycode"
)

// Models lists every table the service owns, in migration order.
func Models() []any {
	return []any{&authentity.User{}, &customerentity.Customer{}, &carentity.Car{}}
}

// Infra holds the already-opened external resources. Redis may be nil.
type Infra struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Mailer authusecase.Mailer
	Logger *slog.Logger
}

// NewEngine builds the repositories, usecases and handlers and returns the router.
func NewEngine(cfg *config.Config, in Infra) (*gin.Engine, error) {
	issuer, err := jwtmw.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	// Repository
	userRepo := authadapters.NewUserGorm(in.DB)
	customerRepo := customeradapters.NewCustomerGorm(in.DB)
	carRepo := NewCarRepository(in.Redis, in.DB, cfg.CacheTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(
		userRepo,
		password.NewHasher(cfg.BcryptCost),
		verifycode.NewGenerator(),
		issuer,
		in.Mailer,
	)
	customerUC := customerusecase.NewCustomerUsecase(customerRepo)
	carUC := carusecase.NewCarUsecase(carRepo)

	return router.NewRouter(router.Deps{
		Auth:        authhandler.NewAuthHandler(authUC),
		Customer:    customerhandler.NewCustomerHandler(customerUC),
		Car:         carhandler.NewCarHandler(carUC),
		Health:      newHealth(in),
		Verifier:    issuer,
		Logger:      in.Logger,
		CORSOrigins: cfg.CORSOrigins,
	}), nil
}

func newHealth(in Infra) *handler.Health {
	h := handler.NewHealth().Require("db", func(ctx context.Context) error {
		sqlDB, err := in.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
	if in.Redis != nil {
		h.Observe("redis", func(ctx context.Context) error {
			return in.Redis.Ping(ctx).Err()
		})
	}
	return h
}
