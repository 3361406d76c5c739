package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	attendanceRoute "schoolku_backend/internals/features/attendance/attendance/route"
	scheduleRoute "schoolku_backend/internals/features/attendance/schedule/route"
	schoolRoute "schoolku_backend/internals/features/schools/school/route"
	studentRoute "schoolku_backend/internals/features/schools/student/route"
	groupRoute "schoolku_backend/internals/features/schools/student_group/route"
	teacherRoute "schoolku_backend/internals/features/schools/teacher/route"
	userRoute "schoolku_backend/internals/features/users/user/route"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AdminRoutes: semua endpoint manajemen di bawah /api/a, khusus role admin.
func AdminRoutes(app *fiber.App, db *gorm.DB) {
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen sekolah"), constants.AdminOnly...),
	)

	userRoute.UserAdminRoutes(admin, db)
	schoolRoute.SchoolAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	groupRoute.StudentGroupAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
}
