package models

import (
	"github.com/jinzhu/gorm"
)

// MenuEntry represents a dish offered on the daily menu
type MenuEntry struct {
	gorm.Model
	EntryID     string `gorm:"column:entry_id;unique_index"`
	Day         string `gorm:"column:menu_date"` // YYYY-MM-DD
	Location    string
	RecipeID    string
	DishName    string
	Description string
	Category    string
	Price       float64
	Status      string
	PrepMinutes int
	SpicyLevel  int // 0-5
	Calories    int
	Vegetarian  bool
	Vegan       bool
	GlutenFree  bool
	Allergens   StringSlice `gorm:"type:text"`
	ChefSpecial bool
}

// TableName sets the table name for MenuEntry
func (MenuEntry) TableName() string {
	return "menu_entries"
}

// MenuCategory represents the category of a menu entry
type MenuCategory string

const (
	// Menu categories
	MenuCategoryAppetizer MenuCategory = "appetizer"
	MenuCategoryMain      MenuCategory = "main"
	MenuCategorySide      MenuCategory = "side"
	MenuCategoryDessert   MenuCategory = "dessert"
	MenuCategoryBeverage  MenuCategory = "beverage"
)

// MenuStatus represents the availability status of a menu entry
type MenuStatus string

const (
	// Availability statuses
	MenuAvailable MenuStatus = "available"
	MenuSoldOut   MenuStatus = "sold_out"
	MenuLimited   MenuStatus = "limited"
)

// DietaryTag represents a dietary classification of a dish
type DietaryTag string

const (
	// Dietary tags
	TagVegetarian DietaryTag = "vegetarian"
	TagVegan      DietaryTag = "vegan"
	TagGlutenFree DietaryTag = "gluten_free"
)

// Available reports whether the entry can currently be ordered
func (m *MenuEntry) Available() bool {
	return m.Status == string(MenuAvailable)
}

// HasDietaryTag reports whether the entry satisfies a dietary tag
func (m *MenuEntry) HasDietaryTag(tag DietaryTag) bool {
	switch tag {
	case TagVegetarian:
		return m.Vegetarian
	case TagVegan:
		return m.Vegan
	case TagGlutenFree:
		return m.GlutenFree
	default:
		return false
	}
}

// DietaryTags returns all tags the entry carries
func (m *MenuEntry) DietaryTags() []string {
	var tags []string
	if m.Vegetarian {
		tags = append(tags, string(TagVegetarian))
	}
	if m.Vegan {
		tags = append(tags, string(TagVegan))
	}
	if m.GlutenFree {
		tags = append(tags, string(TagGlutenFree))
	}
	return tags
}
