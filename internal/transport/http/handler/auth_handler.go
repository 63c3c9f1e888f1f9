package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "listkeeper/internal/transport/http/response"
	"listkeeper/internal/usecase"
)

type AuthHandler struct {
	auth *usecase.AuthService
}

func NewAuthHandler(auth *usecase.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in struct {
		Name     string `json:"name"     binding:"required,max=64"`
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	}); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "user created")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	out, err := h.auth.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Data(c, http.StatusOK, out)
}
