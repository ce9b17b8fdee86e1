package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/mayanshop/mayan-api/auth"
	"github.com/mayanshop/mayan-api/middleware"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimit(rate.Limit(5), 10))
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db))
		authGroup.GET("/me", middleware.ValidateToken, auth.Me(db))
	}
}
