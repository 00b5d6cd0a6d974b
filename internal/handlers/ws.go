package handlers

import (
	"log"
	"net/http"
	"strconv"

	"codetrack-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket connection for live test updates
// @Description  Receive participant joins, submissions and status changes for a test
// @Tags         websocket
// @Param        id path int true "Test ID"
// @Router       /ws/test/{id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	testID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid test id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	tid := uint(testID)
	h.hub.AddConnection(tid, conn)
	defer h.hub.RemoveConnection(tid, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
