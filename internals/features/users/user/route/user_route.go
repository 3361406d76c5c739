// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: manajemen user, dipasang di group /api/a (sudah dijaga
// auth + role admin oleh pemanggil).
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userController := controller.NewUserController(db)

	admin.Get("/users", userController.GetUsers)
	admin.Get("/users/:id", userController.GetUser)
	admin.Delete("/users/:id", userController.DeleteUser)
}
