// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	controller "schoolku_backend/internals/features/users/auth/controller"
	rateLimiter "schoolku_backend/internals/middlewares"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// 🔓 Public
	base := app.Group("/api/auth")
	base.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)

	// 🔒 Protected
	protected := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	protected.Get("/me", authController.Me)
	protected.Post("/register",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("registrasi user"), constants.AdminOnly...),
		authController.Register,
	)
}
