package entity

import (
	"gorm.io/gorm"
)

// Group names are fixed; the rows are seeded at startup.
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery Crew"
)

type User struct {
	gorm.Model
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	Email       string `json:"email"`
	Password    string `json:"-"`
	IsSuperuser bool   `gorm:"default:false" json:"-"`

	Groups []Group `gorm:"many2many:user_groups;" json:"groups"`

	Orders []Order `json:"-"`
	Carts  []Cart  `json:"-"`
}

type Group struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
