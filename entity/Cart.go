package entity

import (
	"gorm.io/gorm"
)

// Cart is one pending line: a menu item and quantity selected by a user.
// One row per (user, menu item); Price is always UnitPrice × Quantity.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_cart_user_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Price     float64 `json:"price"`
}
