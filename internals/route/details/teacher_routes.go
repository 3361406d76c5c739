package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	attendanceRoute "schoolku_backend/internals/features/attendance/attendance/route"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// TeacherRoutes: endpoint self-service teacher di bawah /api/t.
// Admin ikut boleh masuk (TeacherAndAbove).
func TeacherRoutes(app *fiber.App, db *gorm.DB) {
	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("kehadiran"), constants.TeacherAndAbove...),
	)

	attendanceRoute.AttendanceTeacherRoutes(teacher, db)
}
