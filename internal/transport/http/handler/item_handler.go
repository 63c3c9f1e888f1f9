package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "listkeeper/internal/transport/http/response"
	"listkeeper/internal/usecase"
)

type ItemHandler struct {
	items *usecase.ItemService
}

func NewItemHandler(items *usecase.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

func (h *ItemHandler) Create(c *gin.Context) {
	var in struct {
		Name        string  `json:"name"        binding:"required"`
		Description string  `json:"description" binding:"required"`
		Value       float64 `json:"value"`
		ListID      string  `json:"listId"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.items.Create(c.Request.Context(), usecase.CreateItemInput{
		Name:        in.Name,
		Description: in.Description,
		Value:       in.Value,
		ListUUID:    in.ListID,
		UserID:      caller(c),
	}); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "item created")
}

func (h *ItemHandler) List(c *gin.Context) {
	res, err := h.items.List(c.Request.Context(), caller(c), pageFromQuery(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Page(c, res)
}

func (h *ItemHandler) Search(c *gin.Context) {
	res, err := h.items.Search(c.Request.Context(), caller(c), c.Query("searchTerm"), pageFromQuery(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Page(c, res)
}

func (h *ItemHandler) Get(c *gin.Context) {
	it, err := h.items.Get(c.Request.Context(), c.Param("uuid"), caller(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Data(c, http.StatusOK, it)
}

func (h *ItemHandler) ByList(c *gin.Context) {
	items, err := h.items.ByList(c.Request.Context(), c.Param("uuid"), caller(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Data(c, http.StatusOK, items)
}

func (h *ItemHandler) Update(c *gin.Context) {
	var in struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Value       *float64 `json:"value"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.items.Update(c.Request.Context(), usecase.UpdateItemInput{
		UUID:        c.Param("uuid"),
		Name:        in.Name,
		Description: in.Description,
		Value:       in.Value,
		UserID:      caller(c),
	}); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "item updated")
}

func (h *ItemHandler) Delete(c *gin.Context) {
	if err := h.items.Delete(c.Request.Context(), c.Param("uuid"), caller(c)); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "item deleted")
}
