package entity

import (
	"gorm.io/gorm"
)

// Menu is a dish on the public menu page, managed separately from the
// orderable MenuItem catalog.
type Menu struct {
	gorm.Model
	Title       string  `gorm:"not null" json:"title"`
	Price       float64 `json:"price"`
	Inventory   int     `json:"inventory"`
	Description string  `json:"description"`
}
