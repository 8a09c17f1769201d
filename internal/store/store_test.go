package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maitred/internal/database"
	"maitred/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))

	employees := []models.Employee{
		{EmployeeID: "emp-1", FirstName: "Marco", LastName: "Rossi", Department: "kitchen", Shift: "morning", PerformanceRating: 4.8},
		{EmployeeID: "emp-2", FirstName: "Sofia", LastName: "Bianchi", Department: "kitchen", Shift: "evening", PerformanceRating: 4.2},
		{EmployeeID: "emp-3", FirstName: "Liam", LastName: "Walker", Department: "service", Shift: "evening", PerformanceRating: 2.7},
	}
	for i := range employees {
		require.NoError(t, db.Create(&employees[i]).Error)
	}

	items := []models.InventoryItem{
		{ItemID: "inv-1", Name: "Beef Tenderloin", Category: "meat", Stock: 4, ReorderThreshold: 8},
		{ItemID: "inv-2", Name: "Olive Oil", Category: "dry_goods", Stock: 12, ReorderThreshold: 12},
	}
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}

	recipe := models.Recipe{RecipeID: "rec-1", DishName: "Spaghetti Carbonara", Cuisine: "italian",
		DietaryTags: models.StringSlice{"gluten_free"}}
	require.NoError(t, recipe.SetIngredients([]models.RecipeIngredient{{Name: "guanciale", Quantity: 150, Unit: "g"}}))
	require.NoError(t, db.Create(&recipe).Error)

	entries := []models.MenuEntry{
		{EntryID: "menu-1", Day: "2026-08-25", Location: "main", DishName: "Spaghetti Carbonara", Category: "main", Price: 16.5, Status: "available"},
		{EntryID: "menu-2", Day: "2026-08-26", Location: "main", DishName: "Spaghetti Carbonara", Category: "main", Price: 16.5, Status: "available"},
		{EntryID: "menu-3", Day: "2026-08-27", Location: "main", DishName: "Ratatouille", Category: "main", Price: 13.0, Status: "available", Vegan: true},
	}
	for i := range entries {
		require.NoError(t, db.Create(&entries[i]).Error)
	}

	return New(db)
}

func TestQueryEmployeesFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	kitchen, truncated, err := s.QueryEmployees(ctx, EmployeeFilter{Department: "Kitchen"}, 10)
	require.NoError(t, err)
	assert.False(t, truncated)
	assert.Len(t, kitchen, 2)

	evening, _, err := s.QueryEmployees(ctx, EmployeeFilter{Department: "kitchen", Shift: "evening"}, 10)
	require.NoError(t, err)
	require.Len(t, evening, 1)
	assert.Equal(t, "Sofia", evening[0].FirstName)

	byName, _, err := s.QueryEmployees(ctx, EmployeeFilter{Name: "ross"}, 10)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Marco", byName[0].FirstName)
}

func TestQueryEmployeesTruncation(t *testing.T) {
	s := newTestStore(t)

	rows, truncated, err := s.QueryEmployees(context.Background(), EmployeeFilter{}, 2)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.True(t, truncated)
}

func TestEmployeeByIDMissing(t *testing.T) {
	s := newTestStore(t)

	emp, err := s.EmployeeByID(context.Background(), "emp-404")
	require.NoError(t, err)
	assert.Nil(t, emp)
}

func TestLowStockIsStrict(t *testing.T) {
	s := newTestStore(t)

	low, _, err := s.LowStockItems(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Beef Tenderloin", low[0].Name)
}

func TestQueryRecipesByIngredient(t *testing.T) {
	s := newTestStore(t)

	rows, _, err := s.QueryRecipes(context.Background(), RecipeFilter{Ingredient: "Guanciale"}, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Spaghetti Carbonara", rows[0].DishName)

	none, _, err := s.QueryRecipes(context.Background(), RecipeFilter{Ingredient: "durian"}, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQueryRecipesDietaryTagWholeWord(t *testing.T) {
	s := newTestStore(t)

	// "gluten" alone must not match the "gluten_free" tag
	rows, _, err := s.QueryRecipes(context.Background(), RecipeFilter{DietaryTag: "gluten"}, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, _, err = s.QueryRecipes(context.Background(), RecipeFilter{DietaryTag: "gluten_free"}, 10)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRecipeByName(t *testing.T) {
	s := newTestStore(t)

	recipe, err := s.RecipeByIDOrName(context.Background(), "", "spaghetti carbonara")
	require.NoError(t, err)
	require.NotNil(t, recipe)
	assert.Equal(t, "rec-1", recipe.RecipeID)

	missing, err := s.RecipeByIDOrName(context.Background(), "", "phantom dish")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMenuEntryNameLookupScopedByDay(t *testing.T) {
	s := newTestStore(t)

	entry, err := s.MenuEntryByIDOrName(context.Background(), "", "carbonara", "2026-08-26")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "menu-2", entry.EntryID)
}

func TestQueryMenuDietaryTagCaseInsensitive(t *testing.T) {
	s := newTestStore(t)

	for _, tag := range []string{"vegan", "Vegan", "VEGAN"} {
		rows, _, err := s.QueryMenu(context.Background(), MenuFilter{DietaryTag: tag}, 10)
		require.NoError(t, err)
		require.Len(t, rows, 1, "tag %q", tag)
		assert.Equal(t, "Ratatouille", rows[0].DishName, "tag %q", tag)
	}
}

func TestQueryMenuByDay(t *testing.T) {
	s := newTestStore(t)

	rows, _, err := s.QueryMenu(context.Background(), MenuFilter{Day: "2026-08-25"}, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "menu-1", rows[0].EntryID)
}

func TestCancelledContext(t *testing.T) {
	s := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.QueryEmployees(ctx, EmployeeFilter{}, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
