package services

import (
	"littlelemon/entity"
	"littlelemon/repository"
)

type BookingService struct {
	Repo *repository.BookingRepository
}

func NewBookingService(r *repository.BookingRepository) *BookingService {
	return &BookingService{Repo: r}
}

type BookingIn struct {
	FirstName       string `json:"firstName" form:"first_name" binding:"required"`
	LastName        string `json:"lastName" form:"last_name"`
	ReservationSlot int    `json:"reservationSlot" form:"reservation_slot" binding:"required"`
	GuestNumber     int    `json:"guestNumber" form:"guest_number" binding:"required,min=1"`
	Comment         string `json:"comment" form:"comment"`
}

func (s *BookingService) List() ([]entity.Booking, error) {
	return s.Repo.List()
}

func (s *BookingService) Create(in *BookingIn) (*entity.Booking, error) {
	b := &entity.Booking{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		ReservationSlot: in.ReservationSlot,
		GuestNumber:     in.GuestNumber,
		Comment:         in.Comment,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}
