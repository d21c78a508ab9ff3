package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"DietPlanChatbot/internal/common"
	"DietPlanChatbot/internal/middleware"
	"DietPlanChatbot/internal/service"
)

const maxAudioBytes = 10 << 20

type VoiceResponse struct {
	Transcript string `json:"transcript" example:"What can I eat before running?"`
	Reply      string `json:"reply" example:"A banana with peanut butter about an hour before..."`
}

// VoiceChat godoc
// @Summary      Send a voice message
// @Description  Transcribes the uploaded clip and submits the text exactly like POST /chat.
// @Description  Send either a raw audio body with its Content-Type or a multipart form with an "audio" file.
// @Tags         Chat
// @Accept       audio/webm,audio/ogg,audio/wav,multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        audio formData file false "Recorded clip (multipart uploads)"
// @Success      200 {object} handler.VoiceResponse
// @Failure      400 {object} handler.ErrorResponse "No audio or no speech recognized"
// @Failure      401 {object} handler.MsgResponse
// @Failure      500 {object} handler.ChatErrorResponse
// @Failure      503 {object} handler.ErrorResponse "Voice not configured"
// @Router       /chat/voice [post]
func (h *Handler) VoiceChat(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	audio, contentType, err := readAudio(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transcript, reply, err := h.voice.Ask(c.Request.Context(), userID, audio, contentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVoiceDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, common.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No speech recognized"})
		default:
			chatError(c, http.StatusInternalServerError, err)
		}
		return
	}

	c.JSON(http.StatusOK, VoiceResponse{Transcript: transcript, Reply: reply})
}

func readAudio(c *gin.Context) ([]byte, string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAudioBytes)

	var (
		src         io.Reader = c.Request.Body
		contentType           = c.ContentType()
	)
	if strings.HasPrefix(contentType, "multipart/") {
		fh, err := c.FormFile("audio")
		if err != nil {
			return nil, "", fmt.Errorf("missing audio file: %w", err)
		}
		f, err := fh.Open()
		if err != nil {
			return nil, "", fmt.Errorf("failed to open audio file: %w", err)
		}
		defer f.Close()
		src = f
		contentType = fh.Header.Get("Content-Type")
	}

	audio, err := io.ReadAll(src)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, "", errors.New("audio body is empty")
	}
	return audio, contentType, nil
}
