package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "listkeeper/internal/transport/http/response"
	"listkeeper/internal/usecase"
)

type ListHandler struct {
	lists *usecase.ListService
}

func NewListHandler(lists *usecase.ListService) *ListHandler {
	return &ListHandler{lists: lists}
}

func (h *ListHandler) Create(c *gin.Context) {
	var in struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.lists.Create(c.Request.Context(), usecase.CreateListInput{
		Name:        in.Name,
		Description: in.Description,
		UserID:      caller(c),
	}); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "list created")
}

func (h *ListHandler) List(c *gin.Context) {
	res, err := h.lists.ListByUser(c.Request.Context(), caller(c), pageFromQuery(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Page(c, res)
}

func (h *ListHandler) Get(c *gin.Context) {
	l, err := h.lists.Get(c.Request.Context(), c.Param("uuid"), caller(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Data(c, http.StatusOK, l)
}

func (h *ListHandler) Update(c *gin.Context) {
	var in struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.lists.Update(c.Request.Context(), usecase.UpdateListInput{
		UUID:        c.Param("uuid"),
		Name:        in.Name,
		Description: in.Description,
		UserID:      caller(c),
	}); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "list updated")
}

func (h *ListHandler) Delete(c *gin.Context) {
	if err := h.lists.Delete(c.Request.Context(), c.Param("uuid"), caller(c)); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "list deleted")
}

func (h *ListHandler) AddItem(c *gin.Context) {
	var in struct {
		ItemUUID string `json:"itemUuid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.lists.AddItem(c.Request.Context(), c.Param("uuid"), in.ItemUUID, caller(c)); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "item added to list")
}

func (h *ListHandler) RemoveItem(c *gin.Context) {
	var in struct {
		ItemUUID string `json:"itemUuid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.lists.RemoveItem(c.Request.Context(), c.Param("uuid"), in.ItemUUID, caller(c)); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "item removed from list")
}
