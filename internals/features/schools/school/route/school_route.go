// file: internals/features/schools/school/route/school_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/schools/school/controller"
)

func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB) {
	schoolController := controller.NewSchoolController(db)

	admin.Get("/schools", schoolController.GetSchools)
	admin.Get("/schools/:id", schoolController.GetSchool)
	admin.Post("/schools", schoolController.CreateSchool)
	admin.Put("/schools/:id", schoolController.UpdateSchool)
	admin.Delete("/schools/:id", schoolController.DeleteSchool)
}
