package tools

import (
	"context"

	"maitred/internal/models"
	"maitred/internal/store"
)

// MenuEntryView is the daily-menu record shape returned to chat
// sessions. Menu data carries no cost fields, so both roles see the
// same shape.
type MenuEntryView struct {
	EntryID     string            `json:"entry_id"`
	Day         string            `json:"day"`
	Location    string            `json:"location"`
	DishName    string            `json:"dish_name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Price       float64           `json:"price"`
	Status      string            `json:"status"`
	Available   bool              `json:"available"`
	PrepMinutes int               `json:"prep_minutes"`
	SpicyLevel  int               `json:"spicy_level,omitempty"`
	Calories    int               `json:"calories,omitempty"`
	DietaryTags []string          `json:"dietary_tags"`
	Allergens   []string          `json:"allergens"`
	ChefSpecial bool              `json:"chef_special,omitempty"`
	Nutrition   *models.Nutrition `json:"nutrition,omitempty"`
}

func (r *Registry) registerMenuOps() {
	r.register(Descriptor{
		Name: OpQueryDailyMenu,
		Description: "Query the daily menu. Day defaults to today; max_price is an " +
			"inclusive upper bound on the listed price.",
		Schema: Schema{Params: []Param{
			{Name: "day", Type: TypeString, Description: "Menu date", Format: "date"},
			{Name: "location", Type: TypeString, Description: "Restaurant location"},
			{Name: "dietary_tag", Type: TypeString, Description: "Dietary classification", Enum: []string{"vegetarian", "vegan", "gluten_free"}},
			{Name: "max_price", Type: TypeNumber, Description: "Maximum price, inclusive", Minimum: minimum(0)},
		}},
		Roles: allRoles,
	}, r.queryDailyMenu)

	r.register(Descriptor{
		Name: OpMenuItemDetails,
		Description: "Get the full details of one menu item, including dietary tags, " +
			"allergens and nutrition facts. Identify the item by entry_id or by dish name.",
		Schema: Schema{
			Params: []Param{
				{Name: "entry_id", Type: TypeString, Description: "Menu entry identifier"},
				{Name: "name", Type: TypeString, Description: "Dish name, substring match"},
				{Name: "day", Type: TypeString, Description: "Menu date, defaults to today", Format: "date"},
			},
			OneOf: []string{"entry_id", "name"},
		},
		Roles: allRoles,
	}, r.menuItemDetails)
}

func (r *Registry) queryDailyMenu(ctx context.Context, _ Role, args map[string]interface{}) (*Result, error) {
	filter := store.MenuFilter{
		Day:        stringArg(args, "day"),
		Location:   stringArg(args, "location"),
		DietaryTag: stringArg(args, "dietary_tag"),
	}
	if filter.Day == "" {
		filter.Day = r.now().Format("2006-01-02")
	}
	if price, ok := numberArg(args, "max_price"); ok {
		filter.MaxPrice = &price
	}

	entries, truncated, err := r.store.QueryMenu(ctx, filter, r.maxResults)
	if err != nil {
		return nil, wrapStoreError(OpQueryDailyMenu, err)
	}

	records := make([]interface{}, 0, len(entries))
	for i := range entries {
		records = append(records, menuEntryView(&entries[i], nil))
	}
	return newResult(records, truncated), nil
}

func (r *Registry) menuItemDetails(ctx context.Context, _ Role, args map[string]interface{}) (*Result, error) {
	day := stringArg(args, "day")
	if day == "" && stringArg(args, "entry_id") == "" {
		day = r.now().Format("2006-01-02")
	}

	entry, err := r.store.MenuEntryByIDOrName(ctx, stringArg(args, "entry_id"), stringArg(args, "name"), day)
	if err != nil {
		return nil, wrapStoreError(OpMenuItemDetails, err)
	}
	if entry == nil {
		return newResult(nil, false), nil
	}

	// Nutrition facts come from the linked recipe, when there is one
	var nutrition *models.Nutrition
	if entry.RecipeID != "" {
		recipe, err := r.store.RecipeByIDOrName(ctx, entry.RecipeID, "")
		if err != nil {
			return nil, wrapStoreError(OpMenuItemDetails, err)
		}
		if recipe != nil {
			nutrition, err = recipe.GetNutrition()
			if err != nil {
				return nil, wrapStoreError(OpMenuItemDetails, err)
			}
		}
	}

	return newResult([]interface{}{menuEntryView(entry, nutrition)}, false), nil
}

func menuEntryView(entry *models.MenuEntry, nutrition *models.Nutrition) MenuEntryView {
	tags := entry.DietaryTags()
	if tags == nil {
		tags = []string{}
	}
	allergens := []string(entry.Allergens)
	if allergens == nil {
		allergens = []string{}
	}

	return MenuEntryView{
		EntryID:     entry.EntryID,
		Day:         entry.Day,
		Location:    entry.Location,
		DishName:    entry.DishName,
		Description: entry.Description,
		Category:    entry.Category,
		Price:       entry.Price,
		Status:      entry.Status,
		Available:   entry.Available(),
		PrepMinutes: entry.PrepMinutes,
		SpicyLevel:  entry.SpicyLevel,
		Calories:    entry.Calories,
		DietaryTags: tags,
		Allergens:   allergens,
		ChefSpecial: entry.ChefSpecial,
		Nutrition:   nutrition,
	}
}
