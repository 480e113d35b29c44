package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	caradapters "carrental_backend/internal/feature/car/adapters"
	carusecase "carrental_backend/internal/feature/car/usecase"
	"carrental_backend/internal/platform/cache"
)

// NewCarRepository returns the gorm repository, wrapped in the Redis
// read-through cache when a client is available.
func NewCarRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) carusecase.CarRepository {
	repo := caradapters.NewCarGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingCarRepository(rdb, ttl, repo, "cars")
}
