package handlers

import (
	"net/http"

	"codetrack-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ContestHandler struct {
	contestService *services.ContestService
}

func NewContestHandler(contestService *services.ContestService) *ContestHandler {
	return &ContestHandler{contestService: contestService}
}

type ParticipationRequest struct {
	Participated *bool `json:"participated" binding:"required"`
}

func (h *ContestHandler) List(c *gin.Context) {
	contests, err := h.contestService.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, contests)
}

func (h *ContestHandler) Get(c *gin.Context) {
	contestID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	contest, err := h.contestService.Get(contestID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, contest)
}

func (h *ContestHandler) SetParticipation(c *gin.Context) {
	userID := c.GetUint("user_id")
	contestID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	var req ParticipationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	record, err := h.contestService.SetParticipation(userID, contestID, *req.Participated)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Upcoming refreshes the registry from the platform sources, then lists.
func (h *ContestHandler) Upcoming(c *gin.Context) {
	h.contestService.Refresh()

	contests, err := h.contestService.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, contests)
}
