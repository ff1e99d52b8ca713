package catalog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/kusk24/restyle-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Cloth{}))
	return db
}

func TestItemsAreValidShopItems(t *testing.T) {
	items := Items()
	require.NotEmpty(t, items)

	for _, item := range items {
		assert.NotEmpty(t, item.Name)
		assert.Greater(t, item.Price, 0.0)
		_, err := models.ParseCategory(string(item.Category))
		assert.NoError(t, err, "category of %q", item.Name)

		// Shop items carry no owner and no listing status
		assert.Nil(t, item.UserID, "owner of %q", item.Name)
		assert.Nil(t, item.Status, "status of %q", item.Name)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	created, err := Seed(store)
	require.NoError(t, err)
	assert.Equal(t, len(Items()), created)

	created, err = Seed(store)
	require.NoError(t, err)
	assert.Zero(t, created)

	var count int64
	require.NoError(t, db.Model(&models.Cloth{}).Count(&count).Error)
	assert.Equal(t, int64(len(Items())), count)
}
