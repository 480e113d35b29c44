package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"carrental_backend/internal/feature/customer/domain/entity"
	"carrental_backend/internal/feature/customer/usecase"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Customer{}))
	return db
}

func newCustomer(email string) *entity.Customer {
	return &entity.Customer{FirstName: "Jane", LastName: "Doe", Email: email, PhoneNumber: "0700000000", Address: "1 Main St"}
}

func TestCustomerGorm_CreateAndFind(t *testing.T) {
	repo := NewCustomerGorm(setupTestDB(t))
	ctx := context.Background()

	c := newCustomer("jane@example.com")
	require.NoError(t, repo.Create(ctx, c))
	assert.NotZero(t, c.ID)

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, *c, *found)
}

func TestCustomerGorm_Create_DuplicateEmail(t *testing.T) {
	repo := NewCustomerGorm(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCustomer("dup@example.com")))

	err := repo.Create(ctx, newCustomer("dup@example.com"))

	assert.ErrorIs(t, err, usecase.ErrEmailTaken)
}

func TestCustomerGorm_FindByID_NotFound(t *testing.T) {
	repo := NewCustomerGorm(setupTestDB(t))

	c, err := repo.FindByID(context.Background(), 42)

	assert.ErrorIs(t, err, usecase.ErrCustomerNotFound)
	assert.Nil(t, c)
}

func TestCustomerGorm_List(t *testing.T) {
	repo := NewCustomerGorm(setupTestDB(t))
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.Create(ctx, newCustomer("a@example.com")))
	require.NoError(t, repo.Create(ctx, newCustomer("b@example.com")))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a@example.com", all[0].Email)
	assert.Equal(t, "b@example.com", all[1].Email)
}

func TestCustomerGorm_Update(t *testing.T) {
	repo := NewCustomerGorm(setupTestDB(t))
	ctx := context.Background()

	c := newCustomer("jane@example.com")
	require.NoError(t, repo.Create(ctx, c))
	other := newCustomer("other@example.com")
	require.NoError(t, repo.Create(ctx, other))

	c.Address = "2 High St"
	c.PhoneNumber = ""
	require.NoError(t, repo.Update(ctx, c))

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "2 High St", found.Address)
	assert.Empty(t, found.PhoneNumber, "zero values must be written too")

	untouched, err := repo.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", untouched.Address)

	c.Email = "other@example.com"
	assert.ErrorIs(t, repo.Update(ctx, c), usecase.ErrEmailTaken)
}

func TestCustomerGorm_Delete(t *testing.T) {
	repo := NewCustomerGorm(setupTestDB(t))
	ctx := context.Background()

	c := newCustomer("gone@example.com")
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err := repo.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, usecase.ErrCustomerNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), usecase.ErrCustomerNotFound)
}
