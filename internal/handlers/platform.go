package handlers

import (
	"net/http"

	"codetrack-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PlatformHandler struct {
	compareService *services.CompareService
}

func NewPlatformHandler(compareService *services.CompareService) *PlatformHandler {
	return &PlatformHandler{compareService: compareService}
}

// Fetch godoc
// @Summary      Fetch one user's stats from a platform
// @Description  Returns live stats, or synthetic fallback data when the platform is unreachable
// @Tags         platforms
// @Produce      json
// @Param        platform path string true "leetcode, codeforces or gfg"
// @Param        identifier path string true "Username or handle"
// @Success      200 {object} platforms.PlatformProfile
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/fetch/{platform}/{identifier} [get]
func (h *PlatformHandler) Fetch(c *gin.Context) {
	userID := c.GetUint("user_id")
	platform := c.Param("platform")
	identifier := c.Param("identifier")

	profile, err := h.compareService.Fetch(userID, platform, identifier)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Compare godoc
// @Summary      Compare profiles across platforms
// @Tags         platforms
// @Accept       json
// @Produce      json
// @Param        request body services.CompareRequest true "Identifiers, at least one required"
// @Success      200 {object} services.ComparisonBundle
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/compare [post]
func (h *PlatformHandler) Compare(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req services.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	bundle, err := h.compareService.Compare(userID, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, bundle)
}

func (h *PlatformHandler) History(c *gin.Context) {
	userID := c.GetUint("user_id")
	history, err := h.compareService.History(userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *PlatformHandler) DeleteHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	historyID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid history id"})
		return
	}

	if err := h.compareService.DeleteHistory(userID, historyID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "history entry deleted"})
}
