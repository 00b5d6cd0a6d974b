package handlers

import (
	"net/http"

	"codetrack-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SharedListHandler struct {
	listService *services.SharedListService
}

func NewSharedListHandler(listService *services.SharedListService) *SharedListHandler {
	return &SharedListHandler{listService: listService}
}

type CreateSharedListRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

type SetProgressRequest struct {
	Solved *bool `json:"solved" binding:"required"`
}

func (h *SharedListHandler) Create(c *gin.Context) {
	userID := c.GetUint("user_id")
	groupID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}

	var req CreateSharedListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	list, err := h.listService.Create(userID, groupID, req.Name, req.Description)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

func (h *SharedListHandler) ListByGroup(c *gin.Context) {
	userID := c.GetUint("user_id")
	groupID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}

	lists, err := h.listService.ListByGroup(userID, groupID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

func (h *SharedListHandler) Get(c *gin.Context) {
	userID := c.GetUint("user_id")
	listID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid list id"})
		return
	}

	detail, err := h.listService.Get(userID, listID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *SharedListHandler) Update(c *gin.Context) {
	userID := c.GetUint("user_id")
	listID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid list id"})
		return
	}

	var req CreateSharedListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	list, err := h.listService.Update(userID, listID, req.Name, req.Description)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SharedListHandler) Delete(c *gin.Context) {
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

func (h *SharedListHandler) AddQuestion(c *gin.Context) {
	userID := c.GetUint("user_id")
	listID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid list id"})
		return
	}

	var spec services.SharedQuestionSpec
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

func (h *SharedListHandler) RemoveQuestion(c *gin.Context) {
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

func (h *SharedListHandler) SetProgress(c *gin.Context) {
	userID := c.GetUint("user_id")
	questionID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	var req SetProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	progress, err := h.listService.SetProgress(userID, questionID, *req.Solved)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
