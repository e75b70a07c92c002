package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title     string  `gorm:"not null" json:"title"`
	Price     float64 `gorm:"check:price >= 0" json:"price"`
	Featured  bool    `gorm:"default:false" json:"featured"`
	Inventory int     `json:"inventory"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"category"`
}
