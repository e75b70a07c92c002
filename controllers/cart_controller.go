package controllers

import (
	"littlelemon/pkg/resp"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart/menu-items/
func (h *CartController) List(c *gin.Context) {
	caller := utils.CurrentCaller(c)
	lines, err := h.Svc.List(caller.ID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, lines)
}

// POST /cart/menu-items/
func (h *CartController) Add(c *gin.Context) {
	caller := utils.CurrentCaller(c)
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := h.Svc.Add(caller.ID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, line)
}

// DELETE /cart/menu-items/
func (h *CartController) Clear(c *gin.Context) {
	caller := utils.CurrentCaller(c)
	if err := h.Svc.Clear(caller.ID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart cleared"})
}
