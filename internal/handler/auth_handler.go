package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"DietPlanChatbot/internal/common"
)

// /auth/register, /auth/login request body
type CredentialsRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"password123"`
}

type LoginSuccessResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// Register godoc
// @Summary      Register
// @Description  Creates a user account together with an empty diet profile.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        X-Invite-Code header string false "Required only when the server has an invite code configured"
// @Param        request body handler.CredentialsRequest true "Credentials"
// @Success      201 {object} handler.MsgResponse
// @Failure      400 {object} handler.MsgResponse "Invalid body or username already exists"
// @Failure      403 {object} handler.MsgResponse "Invalid invite code"
// @Failure      500 {object} handler.MsgResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var credentials CredentialsRequest
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request"})
		return
	}

	if _, err := h.accounts.Register(c.Request.Context(), credentials.Username, credentials.Password); err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateUsername):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Username already exists"})
		case errors.Is(err, common.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Username and password cannot be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "User registered successfully"})
}

// Login godoc
// @Summary      Login
// @Description  Exchanges username and password for a JWT access token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.CredentialsRequest true "Credentials"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      400 {object} handler.MsgResponse
// @Failure      401 {object} handler.MsgResponse "Invalid credentials"
// @Failure      500 {object} handler.MsgResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var credentials CredentialsRequest

	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Failed to read request body"})
		return
	}
	if err := json.Unmarshal(rawData, &credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request"})
		return
	}

	token, err := h.accounts.Login(c.Request.Context(), credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
			return
		}
		h.log.ErrorContext(c.Request.Context(), "Login(): failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, LoginSuccessResponse{AccessToken: token})
}
