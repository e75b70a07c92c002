package controllers

import (
	"littlelemon/pkg/resp"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

// GroupController serves one membership resource; two instances are
// registered, one per group.
type GroupController struct {
	Svc       *services.GroupService
	GroupName string
}

func NewGroupController(s *services.GroupService, groupName string) *GroupController {
	return &GroupController{Svc: s, GroupName: groupName}
}

// GET /groups/<group>/users/
func (h *GroupController) List(c *gin.Context) {
	users, err := h.Svc.Members(h.GroupName)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, users)
}

type memberIn struct {
	Username string `json:"username" binding:"required"`
}

// POST /groups/<group>/users/
func (h *GroupController) Add(c *gin.Context) {
	var req memberIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(h.GroupName, req.Username); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"username": req.Username, "group": h.GroupName})
}

// DELETE /groups/<group>/users/
func (h *GroupController) Remove(c *gin.Context) {
	var req memberIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Remove(h.GroupName, req.Username); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"username": req.Username, "group": h.GroupName})
}
