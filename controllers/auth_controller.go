package controllers

import (
	"net/http"

	"littlelemon/pkg/resp"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

type registerIn struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// POST /api/users/
func (h *AuthController) Register(c *gin.Context) {
	var req registerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, user)
}

type tokenIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api-token-auth/ exchanges credentials for a bearer token.
func (h *AuthController) ObtainToken(c *gin.Context) {
	var req tokenIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, _, err := h.Svc.Login(req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GET /api/users/me/
func (h *AuthController) Me(c *gin.Context) {
	caller := utils.CurrentCaller(c)
	if caller == nil {
		resp.Unauthorized(c)
		return
	}
	user, err := h.Svc.Profile(caller.ID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}
