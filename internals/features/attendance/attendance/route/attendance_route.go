// file: internals/features/attendance/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/attendance/attendance/controller"
)

// AttendanceAdminRoutes: dipasang di /api/a (auth + role admin oleh pemanggil).
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	adminController := controller.NewAttendanceAdminController(db)

	admin.Post("/save-attendance", adminController.SaveAttendance)
	admin.Get("/attendance-data/:scheduleId/:date", adminController.GetAttendanceData)
	admin.Get("/attendance-history", adminController.GetAttendanceHistory)
	admin.Get("/attendance-stats", adminController.GetAttendanceStats)
	admin.Get("/available-dates", adminController.GetAvailableDates)
	admin.Get("/available-subjects", adminController.GetAvailableSubjects)
	admin.Get("/available-students", adminController.GetAvailableStudents)
	admin.Post("/export-history", adminController.ExportHistory)
}

// AttendanceTeacherRoutes: dipasang di /api/t (auth + role teacher oleh pemanggil).
func AttendanceTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	teacherController := controller.NewAttendanceTeacherController(db)

	teacher.Get("/my-groups", teacherController.GetMyGroups)
	teacher.Get("/students-by-group/:groupId", teacherController.GetStudentsByGroup)
	teacher.Post("/save-attendance", teacherController.SaveAttendance)
}
