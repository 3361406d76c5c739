// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "schoolku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== ADMIN (/api/a) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	routeDetails.AdminRoutes(app, db)

	// ===================== TEACHER (/api/t) =====================
	log.Println("[INFO] Setting up TEACHER group (Auth + RoleCheck)...")
	routeDetails.TeacherRoutes(app, db)
}
