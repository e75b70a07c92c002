package controllers

import (
	"strconv"

	"littlelemon/pkg/resp"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

// MenuController serves categories, menu items and menu-page dishes.
type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /categories/
func (h *MenuController) ListCategories(c *gin.Context) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /categories/
func (h *MenuController) CreateCategory(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}

// GET /menu-items/?category=&ordering=&page=&perpage=
func (h *MenuController) ListMenuItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("perpage", "0"))

	items, err := h.Svc.ListMenuItems(services.MenuItemQuery{
		Category: c.Query("category"),
		Ordering: c.Query("ordering"),
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu-items/:id
func (h *MenuController) GetMenuItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	item, err := h.Svc.GetMenuItem(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu-items/
func (h *MenuController) CreateMenuItem(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.CreateMenuItem(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT/PATCH /menu-items/:id
func (h *MenuController) UpdateMenuItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req services.MenuItemPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.UpdateMenuItem(id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id
func (h *MenuController) DeleteMenuItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteMenuItem(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /api/menu/
func (h *MenuController) ListMenus(c *gin.Context) {
	menus, err := h.Svc.ListMenus()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, menus)
}

// GET /api/menu/:id
func (h *MenuController) GetMenu(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	m, err := h.Svc.GetMenu(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /api/menu/
func (h *MenuController) CreateMenu(c *gin.Context) {
	var req services.MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.CreateMenu(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /api/menu/:id
func (h *MenuController) UpdateMenu(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req services.MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.UpdateMenu(id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /api/menu/:id
func (h *MenuController) DeleteMenu(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteMenu(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
