package store

import (
	"context"
	"strings"

	"maitred/internal/models"
)

// InventoryFilter narrows an inventory query
type InventoryFilter struct {
	Category       string
	BelowThreshold bool
}

// QueryInventory returns up to limit inventory items matching the filter
// and whether more rows matched.
func (s *Store) QueryInventory(ctx context.Context, f InventoryFilter, limit int) ([]models.InventoryItem, bool, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, false, err
	}

	q := s.db.Model(&models.InventoryItem{})
	if f.Category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(f.Category))
	}
	if f.BelowThreshold {
		q = q.Where("stock < reorder_threshold")
	}

	var rows []models.InventoryItem
	if err := q.Order("name").Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, false, err
	}
	if len(rows) > limit {
		return rows[:limit], true, nil
	}
	return rows, false, nil
}

// LowStockItems returns the items strictly below their reorder threshold
func (s *Store) LowStockItems(ctx context.Context, limit int) ([]models.InventoryItem, bool, error) {
	return s.QueryInventory(ctx, InventoryFilter{BelowThreshold: true}, limit)
}
