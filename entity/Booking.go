package entity

import (
	"gorm.io/gorm"
)

type Booking struct {
	gorm.Model
	FirstName       string `gorm:"not null" json:"firstName"`
	LastName        string `json:"lastName"`
	ReservationSlot int    `json:"reservationSlot"`
	GuestNumber     int    `json:"guestNumber"`
	Comment         string `json:"comment"`
}
