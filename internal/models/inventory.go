package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// InventoryItem represents an ingredient or supply in restaurant storage
type InventoryItem struct {
	gorm.Model
	ItemID           string `gorm:"column:item_id;unique_index"`
	Name             string
	Category         string
	Stock            float64
	Unit             string
	ReorderThreshold float64
	MaxStock         float64
	CostPerUnit      float64
	Supplier         string
	Location         string
	ExpiryDate       *time.Time
	LastRestocked    time.Time
}

// TableName sets the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// InventoryCategory represents the category of an inventory item
type InventoryCategory string

const (
	// Inventory categories
	CategoryMeat       InventoryCategory = "meat"
	CategorySeafood    InventoryCategory = "seafood"
	CategoryProduce    InventoryCategory = "produce"
	CategoryDairy      InventoryCategory = "dairy"
	CategoryDryGoods   InventoryCategory = "dry_goods"
	CategorySpices     InventoryCategory = "spices"
	CategoryBeverages  InventoryCategory = "beverages"
	CategoryCondiments InventoryCategory = "condiments"
)

// InventoryLocation represents the storage location of an inventory item
type InventoryLocation string

const (
	// Storage locations
	LocationDryStorage   InventoryLocation = "dry_storage"
	LocationRefrigerator InventoryLocation = "refrigerator"
	LocationFreezer      InventoryLocation = "freezer"
	LocationSpiceRack    InventoryLocation = "spice_rack"
	LocationWalkIn       InventoryLocation = "walk_in"
)

// BelowThreshold reports whether the item needs restocking.
// The boundary is strict: stock equal to the threshold is not low.
func (i *InventoryItem) BelowThreshold() bool {
	return i.Stock < i.ReorderThreshold
}

// Expired reports whether the item has passed its expiry date
func (i *InventoryItem) Expired(now time.Time) bool {
	return i.ExpiryDate != nil && !i.ExpiryDate.After(now)
}
