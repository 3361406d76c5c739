// file: internals/features/attendance/schedule/route/schedule_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/attendance/schedule/controller"
)

func ScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	scheduleController := controller.NewScheduleController(db)

	admin.Get("/schedules-by-group/:groupId", scheduleController.GetSchedulesByGroup)
}
