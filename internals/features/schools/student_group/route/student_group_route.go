// file: internals/features/schools/student_group/route/student_group_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/schools/student_group/controller"
)

func StudentGroupAdminRoutes(admin fiber.Router, db *gorm.DB) {
	groupController := controller.NewStudentGroupController(db)

	admin.Get("/student-groups", groupController.GetGroups)
	admin.Post("/student-groups", groupController.CreateGroup)
	admin.Put("/student-groups/:id", groupController.UpdateGroup)
	admin.Delete("/student-groups/:id", groupController.DeleteGroup)
}
