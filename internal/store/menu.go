package store

import (
	"context"
	"strings"

	"github.com/jinzhu/gorm"

	"maitred/internal/models"
)

// MenuFilter narrows a daily-menu query. Day is an exact YYYY-MM-DD
// date, MaxPrice is an inclusive upper bound.
type MenuFilter struct {
	Day        string
	Location   string
	DietaryTag string
	MaxPrice   *float64
}

// QueryMenu returns up to limit menu entries matching the filter and
// whether more rows matched.
func (s *Store) QueryMenu(ctx context.Context, f MenuFilter, limit int) ([]models.MenuEntry, bool, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, false, err
	}

	q := s.db.Model(&models.MenuEntry{})
	if f.Day != "" {
		q = q.Where("menu_date = ?", f.Day)
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) = ?", strings.ToLower(f.Location))
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	switch models.DietaryTag(strings.ToLower(f.DietaryTag)) {
	case models.TagVegetarian:
		q = q.Where("vegetarian = ?", true)
	case models.TagVegan:
		q = q.Where("vegan = ?", true)
	case models.TagGlutenFree:
		q = q.Where("gluten_free = ?", true)
	}

	var rows []models.MenuEntry
	if err := q.Order("category, dish_name").Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, false, err
	}
	if len(rows) > limit {
		return rows[:limit], true, nil
	}
	return rows, false, nil
}

// MenuEntryByIDOrName looks up a single menu entry by its ID, falling
// back to a case-insensitive substring match on the dish name. Day
// narrows the name match when given. A missing entry is reported as
// (nil, nil), not as an error.
func (s *Store) MenuEntryByIDOrName(ctx context.Context, id, name, day string) (*models.MenuEntry, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	var entry models.MenuEntry
	q := s.db.Model(&models.MenuEntry{})
	if id != "" {
		q = q.Where("entry_id = ?", id)
	} else {
		q = q.Where("LOWER(dish_name) LIKE ?", "%"+strings.ToLower(name)+"%")
		if day != "" {
			q = q.Where("menu_date = ?", day)
		}
	}
	err := q.First(&entry).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
