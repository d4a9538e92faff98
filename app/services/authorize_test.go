package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/gostore/admin/app/helpers"
	"github.com/gostore/admin/app/models"
	"github.com/gostore/admin/app/models/migrations"
	"github.com/gostore/admin/app/repositories"
	"github.com/gostore/admin/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func TestAuthorizeStore(t *testing.T) {
	db := newTestDB(t)

	owner := models.User{ID: "owner-1", FirstName: "O", LastName: "W", Email: "o@example.com", Password: "x"}
	require.NoError(t, db.Create(&owner).Error)
	store := models.Store{Name: "Store", UserID: owner.ID}
	require.NoError(t, db.Create(&store).Error)

	authorizer := services.NewAuthorizer(repositories.NewStoreRepository(db))
	ctx := context.Background()

	t.Run("empty user id is unauthenticated", func(t *testing.T) {
		_, err := authorizer.AuthorizeStore(ctx, "", store.ID)
		assert.ErrorIs(t, err, helpers.ErrUnauthenticated)
	})

	t.Run("foreign user is forbidden", func(t *testing.T) {
		_, err := authorizer.AuthorizeStore(ctx, "someone-else", store.ID)
		assert.ErrorIs(t, err, helpers.ErrForbidden)
	})

	t.Run("unknown store is forbidden", func(t *testing.T) {
		_, err := authorizer.AuthorizeStore(ctx, owner.ID, "no-such-store")
		assert.ErrorIs(t, err, helpers.ErrForbidden)
	})

	t.Run("owner passes", func(t *testing.T) {
		got, err := authorizer.AuthorizeStore(ctx, owner.ID, store.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, store.ID, got.ID)
	})
}
