package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"DietPlanChatbot/internal/common"
	"DietPlanChatbot/internal/middleware"
)

type ChatRequest struct {
	Message string `json:"message" example:"Plan my meals for tomorrow"`
}

type ChatResponse struct {
	Reply string `json:"reply" example:"Here is a vegetarian plan for three meals..."`
}

// ChatErrorResponse keeps the failure text in "reply" so the web client shows it inline.
type ChatErrorResponse struct {
	Reply string `json:"reply" example:"Error: completion provider unavailable"`
	Error string `json:"error" example:"completion provider unavailable"`
}

// Chat godoc
// @Summary      Send a chat message
// @Description  Sends the message with the stored profile and full history to the model,
// @Description  stores the turn and returns the reply. Nothing is stored when the call fails.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.ChatRequest true "User message"
// @Success      200 {object} handler.ChatResponse
// @Failure      400 {object} handler.ChatErrorResponse "Empty message"
// @Failure      401 {object} handler.MsgResponse
// @Failure      500 {object} handler.ChatErrorResponse
// @Router       /chat [post]
func (h *Handler) Chat(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		chatError(c, http.StatusBadRequest, errors.New("invalid request"))
		return
	}

	reply, err := h.chat.SubmitMessage(c.Request.Context(), userID, req.Message)
	if err != nil {
		if errors.Is(err, common.ErrEmptyMessage) {
			chatError(c, http.StatusBadRequest, err)
			return
		}
		chatError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

func chatError(c *gin.Context, status int, err error) {
	c.JSON(status, ChatErrorResponse{Reply: "Error: " + err.Error(), Error: err.Error()})
}
