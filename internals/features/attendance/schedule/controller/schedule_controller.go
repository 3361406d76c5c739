package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/attendance/schedule/model"
	groupModel "schoolku_backend/internals/features/schools/student_group/model"
	helper "schoolku_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

// GET /api/a/schedules-by-group/:groupId?schoolId=
// schoolId opsional — kalau dikirim, group harus milik sekolah itu.
func (sc *ScheduleController) GetSchedulesByGroup(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "groupId tidak valid")
	}

	var group groupModel.StudentGroupModel
	if err := sc.DB.Where("student_group_id = ?", groupID).Take(&group).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Group tidak ditemukan")
	}

	if raw := c.Query("schoolId"); raw != "" {
		schoolID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "schoolId tidak valid")
		}
		if group.StudentGroupSchoolID != schoolID {
			return helper.Error(c, fiber.StatusNotFound, "Group tidak ditemukan di sekolah ini")
		}
	}

	var schedules []model.ScheduleModel
	if err := sc.DB.
		Where("schedule_group_id = ?", groupID).
		Order("schedule_day_of_week ASC, schedule_start_time ASC").
		Find(&schedules).Error; err != nil {
		log.Println("[ERROR] Ambil schedules gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data schedule")
	}

	return helper.Success(c, "Daftar schedule group", fiber.Map{
		"total":     len(schedules),
		"schedules": schedules,
	})
}
