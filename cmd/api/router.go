package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "DietPlanChatbot/docs"
	"DietPlanChatbot/internal/auth"
	"DietPlanChatbot/internal/config"
	"DietPlanChatbot/internal/handler"
	"DietPlanChatbot/internal/metrics"
	"DietPlanChatbot/internal/middleware"
)

func newRouter(
	cfg *config.Config,
	h *handler.Handler,
	tokens *auth.TokenManager,
	log *slog.Logger,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log, m))

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Invite-Code", middleware.RequestIDHeader)
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, middleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	h.RegisterRoutes(router, tokens, cfg.InviteCode)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.FrontendDir != "" {
		router.NoRoute(serveFrontend(cfg.FrontendDir))
	}
	return router
}

// serveFrontend serves the static web client for any path the API does not own.
func serveFrontend(dir string) gin.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Not found"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}
