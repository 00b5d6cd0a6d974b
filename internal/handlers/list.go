package handlers

import (
	"net/http"

	"codetrack-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ListHandler struct {
	listService *services.ListService
}

func NewListHandler(listService *services.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

type CreateListRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	Public      bool   `json:"public"`
}

type SetSolvedRequest struct {
	Solved *bool `json:"solved" binding:"required"`
}

func (h *ListHandler) Create(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	list, err := h.listService.Create(userID, req.Name, req.Description, req.Public)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

func (h *ListHandler) List(c *gin.Context) {
	userID := c.GetUint("user_id")
	lists, err := h.listService.List(userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

func (h *ListHandler) Get(c *gin.Context) {
	userID := c.GetUint("user_id")
	listID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid list id"})
		return
	}

	list, err := h.listService.Get(userID, listID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ListHandler) Update(c *gin.Context) {
	userID := c.GetUint("user_id")
	listID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid list id"})
		return
	}

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	list, err := h.listService.Update(userID, listID, req.Name, req.Description, req.Public)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ListHandler) Delete(c *gin.Context) {
	userID := c.GetUint("user_id")
	listID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid list id"})
		return
	}

	if err := h.listService.Delete(userID, listID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "list deleted"})
}

func (h *ListHandler) AddQuestion(c *gin.Context) {
	userID := c.GetUint("user_id")
	listID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid list id"})
		return
	}

	var spec services.ListQuestionSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.listService.AddQuestion(userID, listID, spec)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *ListHandler) SetSolved(c *gin.Context) {
	userID := c.GetUint("user_id")
	questionID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	var req SetSolvedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.listService.SetSolved(userID, questionID, *req.Solved)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *ListHandler) RemoveQuestion(c *gin.Context) {
	userID := c.GetUint("user_id")
	questionID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	if err := h.listService.RemoveQuestion(userID, questionID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "question removed"})
}
