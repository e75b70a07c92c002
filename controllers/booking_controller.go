package controllers

import (
	"littlelemon/pkg/resp"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct{ Svc *services.BookingService }

func NewBookingController(s *services.BookingService) *BookingController {
	return &BookingController{Svc: s}
}

// GET /bookings/
func (h *BookingController) List(c *gin.Context) {
	bookings, err := h.Svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, bookings)
}

// POST /bookings/
func (h *BookingController) Create(c *gin.Context) {
	var req services.BookingIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b, err := h.Svc.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, b)
}
