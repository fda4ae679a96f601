package handlers

import (
	"strings"
	"time"

	"learningapp/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *AuthHandler, catalogHandler *CatalogHandler, screenHandler *ScreenHandler, limiter *middleware.RateLimiter, allowedOrigins string) *gin.Engine {
	r := gin.Default()

	if allowedOrigins != "" {
		config := cors.DefaultConfig()
		config.AllowOrigins = strings.Split(allowedOrigins, ",")
		config.AllowCredentials = true
		config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Screen-ID"}
		config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
		r.Use(cors.New(config))
	}

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", limiter.Limit("login", 5, 1*time.Minute), authHandler.Login)
			auth.POST("/register", limiter.Limit("register", 5, 1*time.Minute), authHandler.Register)
		}

		books := api.Group("/books")
		{
			books.GET("", catalogHandler.List)
			books.GET("/:id", catalogHandler.GetOne)
		}

		screens := api.Group("/screens")
		{
			screens.POST("", screenHandler.Mount)
			screens.GET("/:id", screenHandler.View)
			screens.DELETE("/:id", screenHandler.Unmount)
			screens.POST("/:id/select", screenHandler.SelectBook)
			screens.POST("/:id/toggle", screenHandler.ToggleChapter)
			screens.POST("/:id/deselect", screenHandler.DeselectBook)
		}
	}

	return r
}
