package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"DietPlanChatbot/internal/common"
	"DietPlanChatbot/internal/middleware"
	"DietPlanChatbot/internal/service"
)

// GetHistory godoc
// @Summary      Get chat history
// @Description  Returns every stored turn of the caller, oldest first.
// @Tags         History
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}  models.ChatTurn
// @Failure      401 {object} handler.MsgResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	turns, err := h.chat.GetHistory(c.Request.Context(), userID)
	if err != nil {
		h.log.ErrorContext(c.Request.Context(), "GetHistory(): failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, turns)
}

// DeleteHistory godoc
// @Summary      Clear chat history
// @Tags         History
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.MsgResponse
// @Failure      401 {object} handler.MsgResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /history [delete]
func (h *Handler) DeleteHistory(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if err := h.chat.ClearHistory(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "History deleted"})
}

// SpeakReply godoc
// @Summary      Spoken reply
// @Description  Synthesizes a stored assistant reply as MP3.
// @Tags         History
// @Produce      audio/mpeg
// @Security     BearerAuth
// @Param        id  path  int  true  "Turn id from GET /history"
// @Success      200 {file}   file "MP3 audio"
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      503 {object} handler.ErrorResponse "Voice not configured"
// @Router       /history/{id}/speech [get]
func (h *Handler) SpeakReply(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	turnID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || turnID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid turn id"})
		return
	}

	audio, err := h.voice.Speak(c.Request.Context(), userID, turnID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVoiceDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, common.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Turn not found"})
		default:
			h.log.ErrorContext(c.Request.Context(), "SpeakReply(): synthesis failed", "user_id", userID, "turn_id", turnID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to synthesize reply"})
		}
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}
