package database

import (
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maitred/internal/models"
)

func openSeeded(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))
	require.NoError(t, Seed(db))
	return db
}

func TestSeedPopulatesAllTables(t *testing.T) {
	db := openSeeded(t)

	var count int64
	db.Model(&models.Employee{}).Count(&count)
	assert.NotZero(t, count, "employees")

	db.Model(&models.InventoryItem{}).Count(&count)
	assert.NotZero(t, count, "inventory")

	db.Model(&models.Recipe{}).Count(&count)
	assert.NotZero(t, count, "recipes")

	db.Model(&models.MenuEntry{}).Count(&count)
	assert.NotZero(t, count, "menu entries")
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openSeeded(t)

	var before int64
	db.Model(&models.Employee{}).Count(&before)

	require.NoError(t, Seed(db))

	var after int64
	db.Model(&models.Employee{}).Count(&after)
	assert.Equal(t, before, after)
}

func TestSeedIncludesLowStockItems(t *testing.T) {
	db := openSeeded(t)

	var low []models.InventoryItem
	require.NoError(t, db.Where("stock < reorder_threshold").Find(&low).Error)
	assert.NotEmpty(t, low, "seed data should include items needing restock")
}

func TestSeedRecipesCarryCost(t *testing.T) {
	db := openSeeded(t)

	var recipe models.Recipe
	require.NoError(t, db.Where("dish_name = ?", "Spaghetti Carbonara").First(&recipe).Error)
	assert.Greater(t, recipe.CostPerServing, 0.0)

	ingredients, err := recipe.GetIngredients()
	require.NoError(t, err)
	assert.NotEmpty(t, ingredients)
}
