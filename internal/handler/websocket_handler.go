package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"DietPlanChatbot/internal/middleware"
)

// ChatSocket godoc
// @Summary      Chat over WebSocket
// @Description  Upgrades to a WebSocket carrying the same conversation as POST /chat.
// @Description  <br>
// @Description  **Note: this is not a plain HTTP endpoint.** Connect with `ws://` or `wss://`.
// @Description  Authentication uses the **`token` query parameter**, not a header.
// @Description  Text frames are chat messages. Binary frames are recorded voice clips (when voice is configured).
// @Description  Every inbound frame is answered with one JSON text frame: `{"reply"}`, `{"transcript","reply"}` or `{"error"}`.
// @Tags         Chat
// @Param        token query string true "JWT access token from /auth/login"
// @Success      101 {string} string "Switching Protocols"
// @Failure      401 {object} handler.MsgResponse "Missing or invalid token"
// @Router       /ws/chat [get]
func (h *Handler) ChatSocket(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WarnContext(c.Request.Context(), "ChatSocket(): upgrade failed", "user_id", userID, "error", err)
		return
	}

	sessionID := uuid.NewString()
	h.log.InfoContext(c.Request.Context(), "websocket connected", "user_id", userID, "session_id", sessionID)
	h.manageChatSession(c.Request.Context(), conn, userID, sessionID)
}
