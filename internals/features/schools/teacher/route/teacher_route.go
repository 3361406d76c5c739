// file: internals/features/schools/teacher/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/schools/teacher/controller"
)

func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	teacherController := controller.NewTeacherController(db)

	admin.Get("/teachers", teacherController.GetTeachers)
	admin.Post("/teachers", teacherController.CreateTeacher)
	admin.Put("/teachers/:id", teacherController.UpdateTeacher)
	admin.Delete("/teachers/:id", teacherController.DeleteTeacher)
}
