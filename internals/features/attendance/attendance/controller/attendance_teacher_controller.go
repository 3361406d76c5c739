package controller

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/attendance/attendance/dto"
	"schoolku_backend/internals/features/attendance/attendance/model"
	attendanceService "schoolku_backend/internals/features/attendance/attendance/service"
	schedService "schoolku_backend/internals/features/attendance/schedule/service"
	studentModel "schoolku_backend/internals/features/schools/student/model"
	groupModel "schoolku_backend/internals/features/schools/student_group/model"
	helper "schoolku_backend/internals/helpers"
)

type AttendanceTeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceTeacherController(db *gorm.DB) *AttendanceTeacherController {
	return &AttendanceTeacherController{DB: db, Validate: validator.New()}
}

// ownedGroup memastikan group milik teacher yang sedang login; 403 kalau bukan.
func (tc *AttendanceTeacherController) ownedGroup(teacherID, groupID uuid.UUID) (*groupModel.StudentGroupModel, error) {
	var group groupModel.StudentGroupModel
	if err := tc.DB.Where("student_group_id = ?", groupID).Take(&group).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Group tidak ditemukan")
	}
	if group.StudentGroupTeacherID == nil || *group.StudentGroupTeacherID != teacherID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Group ini bukan milik Anda")
	}
	return &group, nil
}

// GET /api/t/my-groups
func (tc *AttendanceTeacherController) GetMyGroups(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var groups []groupModel.StudentGroupModel
	if err := tc.DB.
		Where("student_group_teacher_id = ?", teacherID).
		Order("student_group_name ASC").
		Find(&groups).Error; err != nil {
		log.Println("[ERROR] Ambil group teacher gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil group Anda")
	}

	return helper.Success(c, "Group yang Anda pegang", fiber.Map{
		"total":  len(groups),
		"groups": groups,
	})
}

// GET /api/t/students-by-group/:groupId
func (tc *AttendanceTeacherController) GetStudentsByGroup(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "groupId tidak valid")
	}

	group, err := tc.ownedGroup(teacherID, groupID)
	if err != nil {
		return err
	}

	var students []studentModel.StudentModel
	if err := tc.DB.
		Where("student_group_id = ?", group.StudentGroupID).
		Order("student_last_name ASC, student_first_name ASC").
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil siswa group")
	}

	return helper.Success(c, "Siswa group", fiber.Map{
		"group":    group,
		"total":    len(students),
		"students": students,
	})
}

// POST /api/t/save-attendance
// Jalur self-service: cek kepemilikan group, lalu batas beban mengajar
// (sesi ≤ 6 jam, mingguan ≤ 9 jam, jam di grid) SEBELUM ada tulisan.
// Status dibatasi present/absent; selain itu dinormalisasi ke present.
func (tc *AttendanceTeacherController) SaveAttendance(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SaveAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := tc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	groupID, err := req.ParsedGroupID()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "groupId tidak valid")
	}
	date, err := req.ParsedDate()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if _, err := tc.ownedGroup(teacherID, groupID); err != nil {
		return err
	}

	// Validasi beban sebelum menyentuh data apa pun
	workload := attendanceService.NewWorkloadValidator(attendanceService.NewGormAttendanceStore(tc.DB))
	if err := workload.Validate(teacherID, groupID, date, req.StartTime, req.EndTime); err != nil {
		return mapSaveError(c, err)
	}

	var result *attendanceService.UpsertResult
	err = tc.DB.Transaction(func(tx *gorm.DB) error {
		resolver := schedService.NewResolver(schedService.NewGormScheduleStore(tx))
		sched, err := resolver.Resolve(schedService.ResolveInput{
			GroupID:   groupID,
			Subject:   req.Subject,
			Date:      date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		})
		if err != nil {
			return err
		}

		engine := attendanceService.NewEngine(attendanceService.NewGormAttendanceStore(tx))
		result, err = engine.Upsert(attendanceService.UpsertInput{
			GroupID:         groupID,
			Schedule:        sched,
			Date:            date,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			Marks:           req.Marks,
			AllowedStatuses: model.TeacherStatuses,
		})
		return err
	})
	if err != nil {
		return mapSaveError(c, err)
	}

	log.Printf("[SUCCESS] Teacher %s menyimpan kehadiran: group=%s date=%s count=%d\n",
		teacherID, groupID, req.Date, result.Count)
	return helper.Success(c, fmt.Sprintf("Kehadiran tersimpan untuk %d siswa", result.Count), fiber.Map{
		"count":       result.Count,
		"schedule_id": result.ScheduleID,
		"errors":      result.Errors,
	})
}
