package repository

import (
	"littlelemon/entity"

	"gorm.io/gorm"
)

type BookingRepository struct{ DB *gorm.DB }

func NewBookingRepository(db *gorm.DB) *BookingRepository { return &BookingRepository{DB: db} }

func (r *BookingRepository) List() ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Order("id").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) Create(b *entity.Booking) error {
	return r.DB.Create(b).Error
}
