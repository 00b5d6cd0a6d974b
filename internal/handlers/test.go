package handlers

import (
	"net/http"

	"codetrack-backend/internal/services"
	"codetrack-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type TestHandler struct {
	testService *services.TestService
	hub         *ws.Hub
}

func NewTestHandler(testService *services.TestService, hub *ws.Hub) *TestHandler {
	return &TestHandler{testService: testService, hub: hub}
}

type AddQuestionsRequest struct {
	Questions []services.QuestionSpec `json:"questions" binding:"required"`
}

type SubmitRequest struct {
	QuestionID uint  `json:"question_id" binding:"required"`
	IsCorrect  *bool `json:"is_correct" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateTest godoc
// @Summary      Create a private test in a group
// @Tags         tests
// @Accept       json
// @Produce      json
// @Param        id path int true "Group ID"
// @Param        request body services.TestSpec true "Test spec"
// @Success      201 {object} models.PrivateTest
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/groups/{id}/tests [post]
func (h *TestHandler) CreateTest(c *gin.Context) {
	userID := c.GetUint("user_id")
	groupID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}

	var spec services.TestSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	test, err := h.testService.CreateTest(userID, groupID, spec)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, test)
}

func (h *TestHandler) ListTests(c *gin.Context) {
	userID := c.GetUint("user_id")
	groupID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid group id"})
		return
	}

	tests, err := h.testService.ListTests(userID, groupID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

func (h *TestHandler) GetTest(c *gin.Context) {
	userID := c.GetUint("user_id")
	testID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid test id"})
		return
	}

	detail, err := h.testService.GetTest(userID, testID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *TestHandler) DeleteTest(c *gin.Context) {
	userID := c.GetUint("user_id")
	testID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid test id"})
		return
	}

	if err := h.testService.DeleteTest(userID, testID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "test deleted"})
}

func (h *TestHandler) AddQuestions(c *gin.Context) {
	userID := c.GetUint("user_id")
	testID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid test id"})
		return
	}

	var req AddQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	questions, err := h.testService.AddQuestions(userID, testID, req.Questions)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, questions)
}

func (h *TestHandler) Join(c *gin.Context) {
	userID := c.GetUint("user_id")
	testID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid test id"})
		return
	}

	participant, err := h.testService.Join(userID, testID)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.hub.BroadcastToTest(testID, ws.WSMessage{Type: "participant_joined", Data: participant})

	c.JSON(http.StatusCreated, participant)
}

func (h *TestHandler) Submit(c *gin.Context) {
	userID := c.GetUint("user_id")
	testID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid test id"})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	submission, err := h.testService.Submit(userID, testID, req.QuestionID, *req.IsCorrect)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.hub.BroadcastToTest(testID, ws.WSMessage{Type: "submission", Data: gin.H{
		"user_id":     userID,
		"question_id": req.QuestionID,
	}})

	c.JSON(http.StatusCreated, submission)
}

func (h *TestHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetUint("user_id")
	testID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid test id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	test, err := h.testService.UpdateStatus(userID, testID, req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.hub.BroadcastToTest(testID, ws.WSMessage{Type: "status_changed", Data: test})

	c.JSON(http.StatusOK, test)
}

// Results godoc
// @Summary      Ranked test results
// @Tags         tests
// @Produce      json
// @Param        id path int true "Test ID"
// @Success      200 {array} services.ResultEntry
// @Router       /api/v1/tests/{id}/results [get]
func (h *TestHandler) Results(c *gin.Context) {
	userID := c.GetUint("user_id")
	testID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid test id"})
		return
	}

	results, err := h.testService.Results(userID, testID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
