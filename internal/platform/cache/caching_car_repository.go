// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"carrental_backend/internal/feature/car/domain/entity"
	"carrental_backend/internal/feature/car/usecase"
)

// CachingCarRepository decorates a CarRepository with a Redis read-through cache.
// Reads are served from Redis when possible; writes go to the inner repository
// first and then drop the affected keys. A nil client disables caching.
type CachingCarRepository struct {
	inner     usecase.CarRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.CarRepository = (*CachingCarRepository)(nil)

// NewCachingCarRepository wraps inner. If ttl is 0, it defaults to 5 minutes.
// If namespace is empty, it uses "cars".
func NewCachingCarRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CarRepository, namespace string) *CachingCarRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "cars"
	}
	return &CachingCarRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingCarRepository) Create(ctx context.Context, car *entity.Car) error {
	if err := c.inner.Create(ctx, car); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey())
	return nil
}

func (c *CachingCarRepository) Update(ctx context.Context, car *entity.Car) error {
	if err := c.inner.Update(ctx, car); err != nil {
		return err
	}
	c.invalidate(ctx, c.idKey(car.ID), c.listKey())
	return nil
}

func (c *CachingCarRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, c.idKey(id), c.listKey())
	return nil
}

// FindByID checks the cache first. Misses, including ErrCarNotFound, are not cached.
func (c *CachingCarRepository) FindByID(ctx context.Context, id uint) (*entity.Car, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.idKey(id)
	var car entity.Car
	if c.load(ctx, key, &car) {
		return &car, nil
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out)
	return out, nil
}

func (c *CachingCarRepository) List(ctx context.Context) ([]entity.Car, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()
	var cars []entity.Car
	if c.load(ctx, key, &cars) {
		return cars, nil
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out)
	return out, nil
}

// load reports whether key held a decodable value. Corrupted entries are deleted.
func (c *CachingCarRepository) load(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// store is best effort: a failed write only costs a future miss.
func (c *CachingCarRepository) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func (c *CachingCarRepository) invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		slog.WarnContext(ctx, "car cache invalidation failed", "keys", keys, "error", err)
	}
}

func (c *CachingCarRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

func (c *CachingCarRepository) listKey() string {
	return c.namespace + ":list"
}
