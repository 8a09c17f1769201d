package tools

import (
	"context"

	"maitred/internal/models"
	"maitred/internal/store"
)

// IngredientView is one ingredient line of a recipe
type IngredientView struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Notes    string  `json:"notes,omitempty"`
}

// RecipeView is the recipe record shape returned to chat sessions.
// CostPerServing is only populated for the internal role; external
// sessions never see cost data.
type RecipeView struct {
	RecipeID       string            `json:"recipe_id"`
	DishName       string            `json:"dish_name"`
	Category       string            `json:"category"`
	Cuisine        string            `json:"cuisine"`
	Difficulty     int               `json:"difficulty"`
	PrepMinutes    int               `json:"prep_minutes"`
	CookMinutes    int               `json:"cook_minutes"`
	TotalMinutes   int               `json:"total_minutes"`
	Servings       int               `json:"servings"`
	DietaryTags    []string          `json:"dietary_tags"`
	Allergens      []string          `json:"allergens"`
	Ingredients    []IngredientView  `json:"ingredients,omitempty"`
	Instructions   []string          `json:"instructions,omitempty"`
	Nutrition      *models.Nutrition `json:"nutrition,omitempty"`
	CostPerServing *float64          `json:"cost_per_serving,omitempty"`
}

func (r *Registry) registerRecipeOps() {
	r.register(Descriptor{
		Name: OpQueryRecipes,
		Description: "Query the recipe book. Ingredient matches recipes using that ingredient, " +
			"cuisine matches exactly, dietary_tag restricts to a dietary classification.",
		Schema: Schema{Params: []Param{
			{Name: "ingredient", Type: TypeString, Description: "Ingredient name, substring match"},
			{Name: "cuisine", Type: TypeString, Description: "Cuisine type (e.g. italian, mediterranean)"},
			{Name: "dietary_tag", Type: TypeString, Description: "Dietary classification", Enum: []string{"vegetarian", "vegan", "gluten_free"}},
		}},
		Roles: allRoles,
	}, r.queryRecipes)

	r.register(Descriptor{
		Name: OpRecipeDetails,
		Description: "Get the full details of one recipe, including ingredients, " +
			"step-by-step instructions, allergens and nutrition facts. " +
			"Identify the recipe by recipe_id or by exact dish name.",
		Schema: Schema{
			Params: []Param{
				{Name: "recipe_id", Type: TypeString, Description: "Recipe identifier"},
				{Name: "name", Type: TypeString, Description: "Exact dish name, case-insensitive"},
			},
			OneOf: []string{"recipe_id", "name"},
		},
		Roles: allRoles,
	}, r.recipeDetails)
}

func (r *Registry) queryRecipes(ctx context.Context, role Role, args map[string]interface{}) (*Result, error) {
	filter := store.RecipeFilter{
		Ingredient: stringArg(args, "ingredient"),
		Cuisine:    stringArg(args, "cuisine"),
		DietaryTag: stringArg(args, "dietary_tag"),
	}

	recipes, truncated, err := r.store.QueryRecipes(ctx, filter, r.maxResults)
	if err != nil {
		return nil, wrapStoreError(OpQueryRecipes, err)
	}

	records := make([]interface{}, 0, len(recipes))
	for i := range recipes {
		view, err := recipeView(&recipes[i], role, false)
		if err != nil {
			return nil, wrapStoreError(OpQueryRecipes, err)
		}
		records = append(records, view)
	}
	return newResult(records, truncated), nil
}

func (r *Registry) recipeDetails(ctx context.Context, role Role, args map[string]interface{}) (*Result, error) {
	recipe, err := r.store.RecipeByIDOrName(ctx, stringArg(args, "recipe_id"), stringArg(args, "name"))
	if err != nil {
		return nil, wrapStoreError(OpRecipeDetails, err)
	}
	if recipe == nil {
		return newResult(nil, false), nil
	}

	view, err := recipeView(recipe, role, true)
	if err != nil {
		return nil, wrapStoreError(OpRecipeDetails, err)
	}
	return newResult([]interface{}{view}, false), nil
}

// recipeView builds the role-scoped record. Cost data is stripped
// per-field for external sessions; ingredients, instructions and
// nutrition are shared with both roles.
func recipeView(recipe *models.Recipe, role Role, detailed bool) (*RecipeView, error) {
	view := &RecipeView{
		RecipeID:     recipe.RecipeID,
		DishName:     recipe.DishName,
		Category:     recipe.Category,
		Cuisine:      recipe.Cuisine,
		Difficulty:   recipe.Difficulty,
		PrepMinutes:  recipe.PrepMinutes,
		CookMinutes:  recipe.CookMinutes,
		TotalMinutes: recipe.TotalMinutes(),
		Servings:     recipe.Servings,
		DietaryTags:  recipe.DietaryTags,
		Allergens:    recipe.Allergens,
	}

	if role == RoleInternal {
		cost := recipe.CostPerServing
		view.CostPerServing = &cost
	}

	if detailed {
		ingredients, err := recipe.GetIngredients()
		if err != nil {
			return nil, err
		}
		for _, ing := range ingredients {
			view.Ingredients = append(view.Ingredients, IngredientView(ing))
		}
		view.Instructions = recipe.Instructions

		nutrition, err := recipe.GetNutrition()
		if err != nil {
			return nil, err
		}
		view.Nutrition = nutrition
	}

	return view, nil
}
