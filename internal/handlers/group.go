package handlers

import (
	"net/http"
	"strconv"

	"codetrack-backend/internal/models"
	"codetrack-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groupService *services.GroupService
}

func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

type UpdateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AddMemberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

type SetRoleRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

// CreateGroup godoc
// @Summary      Create a group
// @Description  Create a group; the creator becomes its owner
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        request body CreateGroupRequest true "Group data"
// @Success      201 {object} models.Group
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	group, err := h.groupService.CreateGroup(userID, req.Name, req.Description)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (h *GroupHandler) ListGroups(c *gin.Context) {
	userID := c.GetUint("user_id")
	groups, err := h.groupService.ListGroups(userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *GroupHandler) GetGroup(c *gin.Context) {
	userID := c.GetUint("user_id")
	groupID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}

	detail, err := h.groupService.GetGroup(userID, groupID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	userID := c.GetUint("user_id")
	groupID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}

	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	group, err := h.groupService.UpdateGroup(userID, groupID, req.Name, req.Description)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	userID := c.GetUint("user_id")
	groupID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}

	if err := h.groupService.DeleteGroup(userID, groupID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "group deleted"})
}

// JoinByInviteCode godoc
// @Summary      Redeem an invite code
// @Tags         groups
// @Produce      json
// @Param        inviteCode path string true "Invite code"
// @Success      200 {object} models.Group
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/groups/join/{inviteCode} [get]
func (h *GroupHandler) JoinByInviteCode(c *gin.Context) {
	userID := c.GetUint("user_id")
	code := c.Param("inviteCode")

	group, err := h.groupService.JoinByInviteCode(userID, code)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *GroupHandler) AddMember(c *gin.Context) {
	userID := c.GetUint("user_id")
	groupID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.groupService.AddMember(userID, groupID, req.UserID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *GroupHandler) SetRole(c *gin.Context) {
	userID := c.GetUint("user_id")
	groupID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}
	targetID, err := parseID(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.groupService.SetRole(userID, groupID, targetID, req.Role)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *GroupHandler) RemoveMember(c *gin.Context) {
	userID := c.GetUint("user_id")
	groupID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}
	targetID, err := parseID(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	if err := h.groupService.RemoveMember(userID, groupID, targetID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "member removed"})
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	return uint(id), err
}
