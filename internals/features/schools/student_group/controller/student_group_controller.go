package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "schoolku_backend/internals/features/attendance/attendance/model"
	schedModel "schoolku_backend/internals/features/attendance/schedule/model"
	schoolModel "schoolku_backend/internals/features/schools/school/model"
	studentModel "schoolku_backend/internals/features/schools/student/model"
	"schoolku_backend/internals/features/schools/student_group/dto"
	"schoolku_backend/internals/features/schools/student_group/model"
	teacherModel "schoolku_backend/internals/features/schools/teacher/model"
	helper "schoolku_backend/internals/helpers"
)

type StudentGroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentGroupController(db *gorm.DB) *StudentGroupController {
	return &StudentGroupController{DB: db, Validate: validator.New()}
}

// GET /api/a/student-groups?schoolId=
func (gc *StudentGroupController) GetGroups(c *fiber.Ctx) error {
	q := gc.DB.Model(&model.StudentGroupModel{})

	if raw := c.Query("schoolId"); raw != "" {
		schoolID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "schoolId tidak valid")
		}
		q = q.Where("student_group_school_id = ?", schoolID)
	}

	var groups []model.StudentGroupModel
	if err := q.Order("student_group_name ASC").Find(&groups).Error; err != nil {
		log.Println("[ERROR] Ambil groups gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data group")
	}

	return helper.Success(c, "Daftar group", fiber.Map{
		"total":  len(groups),
		"groups": groups,
	})
}

// POST /api/a/student-groups — nama group harus unik di dalam satu sekolah.
func (gc *StudentGroupController) CreateGroup(c *fiber.Ctx) error {
	var req dto.CreateStudentGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := gc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	schoolID, _ := uuid.Parse(req.SchoolID)
	var school schoolModel.SchoolModel
	if err := gc.DB.Where("school_id = ?", schoolID).Take(&school).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
	}

	var teacherID *uuid.UUID
	if req.TeacherID != nil {
		id, _ := uuid.Parse(*req.TeacherID)
		var teacher teacherModel.TeacherModel
		if err := gc.DB.Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
			Take(&teacher).Error; err != nil {
			return helper.Error(c, fiber.StatusNotFound, "Teacher tidak ditemukan di sekolah ini")
		}
		teacherID = &id
	}

	var dup int64
	if err := gc.DB.Model(&model.StudentGroupModel{}).
		Where("student_group_school_id = ? AND student_group_name = ?", schoolID, req.Name).
		Count(&dup).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa nama group")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nama group sudah dipakai di sekolah ini")
	}

	group := req.ToModel(schoolID, teacherID)
	if err := gc.DB.Create(&group).Error; err != nil {
		log.Println("[ERROR] Buat group gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat group")
	}

	log.Printf("[SUCCESS] Group dibuat: %s\n", group.StudentGroupName)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Group berhasil dibuat", group)
}

// PUT /api/a/student-groups/:id
func (gc *StudentGroupController) UpdateGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID group tidak valid")
	}

	var req dto.UpdateStudentGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := gc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var group model.StudentGroupModel
	if err := gc.DB.Where("student_group_id = ?", id).Take(&group).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Group tidak ditemukan")
	}

	if req.Name != nil {
		var dup int64
		if err := gc.DB.Model(&model.StudentGroupModel{}).
			Where("student_group_school_id = ? AND student_group_name = ? AND student_group_id <> ?",
				group.StudentGroupSchoolID, *req.Name, id).
			Count(&dup).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa nama group")
		}
		if dup > 0 {
			return helper.Error(c, fiber.StatusBadRequest, "Nama group sudah dipakai di sekolah ini")
		}
		group.StudentGroupName = *req.Name
	}

	if req.ClearTeacher {
		group.StudentGroupTeacherID = nil
	} else if req.TeacherID != nil {
		teacherID, _ := uuid.Parse(*req.TeacherID)
		var teacher teacherModel.TeacherModel
		if err := gc.DB.Where("teacher_id = ? AND teacher_school_id = ?", teacherID, group.StudentGroupSchoolID).
			Take(&teacher).Error; err != nil {
			return helper.Error(c, fiber.StatusNotFound, "Teacher tidak ditemukan di sekolah ini")
		}
		group.StudentGroupTeacherID = &teacherID
	}

	if err := gc.DB.Save(&group).Error; err != nil {
		log.Println("[ERROR] Update group gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui group")
	}

	return helper.Success(c, "Group berhasil diperbarui", group)
}

// DELETE /api/a/student-groups/:id — ditolak selama group masih punya
// siswa, schedule, atau catatan kehadiran.
func (gc *StudentGroupController) DeleteGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID group tidak valid")
	}

	checks := []struct {
		model interface{}
		where string
		msg   string
	}{
		{&studentModel.StudentModel{}, "student_group_id = ?", "Group masih punya siswa — pindahkan siswanya dulu"},
		{&schedModel.ScheduleModel{}, "schedule_group_id = ?", "Group masih punya schedule — hapus schedule-nya dulu"},
		{&attendanceModel.AttendanceModel{}, "attendance_group_id = ?", "Group masih punya catatan kehadiran"},
	}
	for _, chk := range checks {
		var n int64
		if err := gc.DB.Model(chk.model).Where(chk.where, id).Count(&n).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa relasi group")
		}
		if n > 0 {
			return helper.Error(c, fiber.StatusBadRequest, chk.msg)
		}
	}

	res := gc.DB.Where("student_group_id = ?", id).Delete(&model.StudentGroupModel{})
	if res.Error != nil {
		log.Println("[ERROR] Hapus group gagal:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus group")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Group tidak ditemukan")
	}

	return helper.Success(c, "Group berhasil dihapus", nil)
}
