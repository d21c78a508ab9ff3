package handler

import (
	"github.com/gin-gonic/gin"

	"DietPlanChatbot/internal/auth"
	"DietPlanChatbot/internal/middleware"
)

// RegisterRoutes mounts the API. Paths match what the web client calls.
func (h *Handler) RegisterRoutes(router gin.IRouter, tokens *auth.TokenManager, inviteCode string) {
	router.GET("/healthz", h.Health)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", middleware.InviteCodeMiddleware(inviteCode), h.Register)
		authGroup.POST("/login", h.Login)
	}

	protected := router.Group("/").Use(middleware.AuthMiddleware(tokens))
	{
		protected.GET("/profile", h.GetProfile)
		protected.PUT("/profile", h.UpdateProfile)
		protected.POST("/chat", h.Chat)
		protected.POST("/chat/voice", h.VoiceChat)
		protected.GET("/history", h.GetHistory)
		protected.DELETE("/history", h.DeleteHistory)
		protected.GET("/history/:id/speech", h.SpeakReply)
	}

	router.GET("/ws/chat", middleware.QueryAuthMiddleware(tokens), h.ChatSocket)
}
