package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry‐point that wires up Public, Auth, User,
// Order, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public storefront routes (no middleware)
	SetupPublicRoutes(r, db)

	// Auth routes (rate‐limited)
	SetupAuthRoutes(r, db)

	// User routes (JWT‐protected)
	SetupUserRoutes(r, db)

	// Order routes (JWT‐protected, admin subset inside)
	SetupOrderRoutes(r, db)

	// Admin routes (JWT + admin role)
	SetupAdminRoutes(r, db)
}
