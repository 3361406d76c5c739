// file: internals/features/schools/student/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/schools/student/controller"
)

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	studentController := controller.NewStudentController(db)

	admin.Get("/students", studentController.GetStudents)
	admin.Post("/students", studentController.CreateStudent)
	admin.Put("/students/:id", studentController.UpdateStudent)
	admin.Delete("/students/:id", studentController.DeleteStudent)
}
