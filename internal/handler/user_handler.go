package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"DietPlanChatbot/internal/middleware"
	"DietPlanChatbot/internal/models"
)

// GetProfile godoc
// @Summary      Get profile
// @Description  Returns the caller's diet profile. Unset fields are null.
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.Profile
// @Failure      401 {object} handler.MsgResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	profile, err := h.accounts.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.log.ErrorContext(c.Request.Context(), "GetProfile(): failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Partial update. Omitted keys keep their stored value, null clears it.
// @Description  Numeric fields also accept numeric strings; an empty string clears them.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.Profile true "Fields to change"
// @Success      200 {object} handler.MsgResponse
// @Failure      400 {object} handler.MsgResponse
// @Failure      401 {object} handler.MsgResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Failed to read request body"})
		return
	}

	var update models.ProfileUpdate
	if err := json.Unmarshal(rawData, &update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid profile: " + err.Error()})
		return
	}

	if _, err := h.accounts.UpdateProfile(c.Request.Context(), userID, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Profile updated"})
}
