package tools

import (
	"context"

	"maitred/internal/models"
	"maitred/internal/store"
)

// InventoryView is the storage record shape returned to chat sessions.
// Inventory operations are internal-only, so supplier and cost data are
// always included.
type InventoryView struct {
	ItemID           string  `json:"item_id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Stock            float64 `json:"stock"`
	Unit             string  `json:"unit"`
	ReorderThreshold float64 `json:"reorder_threshold"`
	LowStock         bool    `json:"low_stock"`
	Shortage         float64 `json:"shortage,omitempty"`
	CostPerUnit      float64 `json:"cost_per_unit"`
	Supplier         string  `json:"supplier"`
	Location         string  `json:"location"`
	ExpiryDate       string  `json:"expiry_date,omitempty"`
}

func (r *Registry) registerInventoryOps() {
	r.register(Descriptor{
		Name: OpQueryInventory,
		Description: "Query storage inventory. Category matches exactly; " +
			"below_threshold restricts results to items that need restocking.",
		Schema: Schema{Params: []Param{
			{Name: "category", Type: TypeString, Description: "Item category (e.g. meat, seafood, produce, dairy, dry_goods, spices)"},
			{Name: "below_threshold", Type: TypeBoolean, Description: "Only items with stock strictly below their reorder threshold"},
		}},
		Roles: internalOnly,
	}, r.queryInventory)

	r.register(Descriptor{
		Name: OpLowStockAlerts,
		Description: "List every inventory item whose stock is strictly below its " +
			"reorder threshold, with the shortage amount and supplier.",
		Schema: Schema{},
		Roles:  internalOnly,
	}, r.lowStockAlerts)
}

func (r *Registry) queryInventory(ctx context.Context, _ Role, args map[string]interface{}) (*Result, error) {
	filter := store.InventoryFilter{
		Category:       stringArg(args, "category"),
		BelowThreshold: boolArg(args, "below_threshold"),
	}

	items, truncated, err := r.store.QueryInventory(ctx, filter, r.maxResults)
	if err != nil {
		return nil, wrapStoreError(OpQueryInventory, err)
	}
	return newResult(inventoryRecords(items), truncated), nil
}

func (r *Registry) lowStockAlerts(ctx context.Context, _ Role, _ map[string]interface{}) (*Result, error) {
	items, truncated, err := r.store.LowStockItems(ctx, r.maxResults)
	if err != nil {
		return nil, wrapStoreError(OpLowStockAlerts, err)
	}
	return newResult(inventoryRecords(items), truncated), nil
}

func inventoryRecords(items []models.InventoryItem) []interface{} {
	records := make([]interface{}, 0, len(items))
	for i := range items {
		records = append(records, inventoryView(&items[i]))
	}
	return records
}

func inventoryView(item *models.InventoryItem) InventoryView {
	view := InventoryView{
		ItemID:           item.ItemID,
		Name:             item.Name,
		Category:         item.Category,
		Stock:            item.Stock,
		Unit:             item.Unit,
		ReorderThreshold: item.ReorderThreshold,
		LowStock:         item.BelowThreshold(),
		CostPerUnit:      item.CostPerUnit,
		Supplier:         item.Supplier,
		Location:         item.Location,
	}
	if view.LowStock {
		view.Shortage = item.ReorderThreshold - item.Stock
	}
	if item.ExpiryDate != nil {
		view.ExpiryDate = item.ExpiryDate.Format("2006-01-02")
	}
	return view
}
