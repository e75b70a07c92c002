package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order status: false = pending, true = delivered.
type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	DeliveryCrewID *uint `json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status bool      `gorm:"default:false" json:"status"`
	Total  float64   `json:"total"`
	Date   time.Time `json:"date"`

	OrderItems []OrderItem `json:"orderItems"`
}
