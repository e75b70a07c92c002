package controllers

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

// PagesController serves the public content pages.
type PagesController struct {
	MenuSvc    *services.MenuService
	BookingSvc *services.BookingService
}

func NewPagesController(m *services.MenuService, b *services.BookingService) *PagesController {
	return &PagesController{MenuSvc: m, BookingSvc: b}
}

// GET /
func (h *PagesController) Home(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to Little Lemon")
}

// GET /about/
func (h *PagesController) About(c *gin.Context) {
	c.String(http.StatusOK, "About Little Lemon")
}

// GET /menu/
func (h *PagesController) Menu(c *gin.Context) {
	menus, err := h.MenuSvc.ListMenus()
	if err != nil {
		fail(c, err)
		return
	}
	var b strings.Builder
	b.WriteString("<h1>Little Lemon Menu</h1>\n<ul>\n")
	for _, m := range menus {
		fmt.Fprintf(&b, "<li>%s: %.2f</li>\n", html.EscapeString(m.Title), m.Price)
	}
	b.WriteString("</ul>\n")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}

// GET /book/ shows the form hint; POST /book/ saves the booking.
func (h *PagesController) Book(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.String(http.StatusOK, "Book a table for Little Lemon")
		return
	}

	var req services.BookingIn
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid booking: %v", err)
		return
	}
	if _, err := h.BookingSvc.Create(&req); err != nil {
		fail(c, err)
		return
	}
	c.String(http.StatusOK, "Booking confirmed for %s %s", req.FirstName, req.LastName)
}
