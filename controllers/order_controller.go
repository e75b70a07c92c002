package controllers

import (
	"littlelemon/pkg/resp"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /orders/ — visibility depends on the caller's role.
func (h *OrderController) List(c *gin.Context) {
	caller := utils.CurrentCaller(c)
	orders, err := h.Svc.List(caller)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /orders/ — checkout: converts the caller's cart into an order.
func (h *OrderController) Checkout(c *gin.Context) {
	caller := utils.CurrentCaller(c)
	order, err := h.Svc.Checkout(caller.ID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (h *OrderController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	caller := utils.CurrentCaller(c)
	order, err := h.Svc.Get(caller, id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT/PATCH /orders/:id
func (h *OrderController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req services.UpdateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	caller := utils.CurrentCaller(c)
	order, err := h.Svc.Update(caller, id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id
func (h *OrderController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
