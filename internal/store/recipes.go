package store

import (
	"context"
	"strings"

	"github.com/jinzhu/gorm"

	"maitred/internal/models"
)

// RecipeFilter narrows a recipe query. Ingredient is a substring match
// on the serialized ingredient list, Cuisine matches exactly
// (case-insensitive), DietaryTag matches a whole tag.
type RecipeFilter struct {
	Ingredient string
	Cuisine    string
	DietaryTag string
}

// QueryRecipes returns up to limit recipes matching the filter and
// whether more rows matched.
func (s *Store) QueryRecipes(ctx context.Context, f RecipeFilter, limit int) ([]models.Recipe, bool, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, false, err
	}

	q := s.db.Model(&models.Recipe{})
	if f.Ingredient != "" {
		q = q.Where("LOWER(ingredients_json) LIKE ?", "%"+strings.ToLower(f.Ingredient)+"%")
	}
	if f.Cuisine != "" {
		q = q.Where("LOWER(cuisine) = ?", strings.ToLower(f.Cuisine))
	}
	if f.DietaryTag != "" {
		// Tags are stored as a JSON array, so the quoted form matches
		// whole tags only.
		q = q.Where("dietary_tags LIKE ?", `%"`+strings.ToLower(f.DietaryTag)+`"%`)
	}

	var rows []models.Recipe
	if err := q.Order("dish_name").Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, false, err
	}
	if len(rows) > limit {
		return rows[:limit], true, nil
	}
	return rows, false, nil
}

// RecipeByIDOrName looks up a single recipe by its ID, falling back to a
// case-insensitive name match. A missing recipe is reported as
// (nil, nil), not as an error.
func (s *Store) RecipeByIDOrName(ctx context.Context, id, name string) (*models.Recipe, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	var recipe models.Recipe
	var err error
	if id != "" {
		err = s.db.Where("recipe_id = ?", id).First(&recipe).Error
	} else {
		err = s.db.Where("LOWER(dish_name) = ?", strings.ToLower(name)).First(&recipe).Error
	}
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}
