package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "listkeeper/internal/transport/http/response"
	"listkeeper/internal/usecase"
)

type UserHandler struct {
	users *usecase.UserService
}

func NewUserHandler(users *usecase.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.users.Me(c.Request.Context(), caller(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Data(c, http.StatusOK, u)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var in struct {
		Name     *string `json:"name"`
		Email    *string `json:"email" binding:"omitempty,email"`
		Password *string `json:"password" binding:"omitempty,min=6"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.users.UpdateMe(c.Request.Context(), caller(c), usecase.UpdateMeInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	}); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "user updated")
}

func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.users.DeleteMe(c.Request.Context(), caller(c)); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "user deleted")
}
