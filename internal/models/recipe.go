package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/jinzhu/gorm"
)

// StringSlice represents a slice of strings that can be stored in the database
type StringSlice []string

// Value converts the slice to a JSON string for storage
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan converts the database value back to a slice
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// Contains reports whether the slice holds the given value
func (s StringSlice) Contains(value string) bool {
	for _, v := range s {
		if v == value {
			return true
		}
	}
	return false
}

// Recipe represents a dish recipe in the restaurant's recipe book
type Recipe struct {
	gorm.Model
	RecipeID        string `gorm:"column:recipe_id;unique_index"`
	DishName        string
	Category        string
	Cuisine         string
	Difficulty      int // 1-5
	PrepMinutes     int
	CookMinutes     int
	Servings        int
	IngredientsJSON string      `gorm:"type:text"`
	Instructions    StringSlice `gorm:"type:text"`
	DietaryTags     StringSlice `gorm:"type:text"`
	Allergens       StringSlice `gorm:"type:text"`
	NutritionJSON   string      `gorm:"type:text"`
	CostPerServing  float64
	// Transient fields (ignored by GORM)
	Ingredients []RecipeIngredient `gorm:"-"`
}

// TableName sets the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient represents one ingredient line of a recipe
type RecipeIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Notes    string  `json:"notes,omitempty"`
}

// Nutrition holds per-serving nutrition facts for a recipe
type Nutrition struct {
	Calories      int     `json:"calories"`
	ProteinGrams  float64 `json:"protein_grams"`
	FatGrams      float64 `json:"fat_grams"`
	CarbGrams     float64 `json:"carb_grams"`
	SodiumMilligr float64 `json:"sodium_mg"`
}

// GetIngredients returns the deserialized ingredient list
func (r *Recipe) GetIngredients() ([]RecipeIngredient, error) {
	if len(r.Ingredients) > 0 {
		return r.Ingredients, nil
	}
	var ingredients []RecipeIngredient
	if r.IngredientsJSON == "" {
		return ingredients, nil
	}
	if err := json.Unmarshal([]byte(r.IngredientsJSON), &ingredients); err != nil {
		return nil, err
	}
	r.Ingredients = ingredients
	return ingredients, nil
}

// SetIngredients serializes the ingredient list for storage
func (r *Recipe) SetIngredients(ingredients []RecipeIngredient) error {
	data, err := json.Marshal(ingredients)
	if err != nil {
		return err
	}
	r.IngredientsJSON = string(data)
	r.Ingredients = ingredients
	return nil
}

// GetNutrition returns the deserialized nutrition facts, nil when absent
func (r *Recipe) GetNutrition() (*Nutrition, error) {
	if r.NutritionJSON == "" {
		return nil, nil
	}
	var n Nutrition
	if err := json.Unmarshal([]byte(r.NutritionJSON), &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// SetNutrition serializes the nutrition facts for storage
func (r *Recipe) SetNutrition(n Nutrition) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	r.NutritionJSON = string(data)
	return nil
}

// TotalMinutes returns the total prep plus cook time
func (r *Recipe) TotalMinutes() int {
	return r.PrepMinutes + r.CookMinutes
}
