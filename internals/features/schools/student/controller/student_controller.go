package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "schoolku_backend/internals/features/attendance/attendance/model"
	"schoolku_backend/internals/features/schools/student/dto"
	"schoolku_backend/internals/features/schools/student/model"
	groupModel "schoolku_backend/internals/features/schools/student_group/model"
	helper "schoolku_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

// GET /api/a/students?groupId=&schoolId=
func (sc *StudentController) GetStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := sc.DB.Model(&model.StudentModel{})
	if raw := c.Query("groupId"); raw != "" {
		groupID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "groupId tidak valid")
		}
		q = q.Where("student_group_id = ?", groupID)
	}
	if raw := c.Query("schoolId"); raw != "" {
		schoolID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "schoolId tidak valid")
		}
		q = q.Where("student_school_id = ?", schoolID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	var students []model.StudentModel
	if err := q.Order("student_last_name ASC, student_first_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		log.Println("[ERROR] Ambil students gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.Success(c, "Daftar siswa", fiber.Map{
		"students":   students,
		"pagination": helper.BuildPagination(total, paging, len(students)),
	})
}

// POST /api/a/students
func (sc *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := sc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	groupID, _ := uuid.Parse(req.GroupID)
	var group groupModel.StudentGroupModel
	if err := sc.DB.Where("student_group_id = ?", groupID).Take(&group).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Group tidak ditemukan")
	}

	student, err := req.ToModel(&group)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := sc.DB.Create(&student).Error; err != nil {
		log.Println("[ERROR] Buat siswa gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat siswa")
	}

	log.Printf("[SUCCESS] Siswa dibuat: %s %s\n", student.StudentFirstName, student.StudentLastName)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa berhasil dibuat", student)
}

// PUT /api/a/students/:id — pindah group menyinkronkan ulang salinan school.
func (sc *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := sc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.StudentModel
	if err := sc.DB.Where("student_id = ?", id).Take(&student).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	if err := req.ApplyTo(&student); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal lahir tidak valid (harus YYYY-MM-DD)")
	}

	if req.GroupID != nil {
		groupID, _ := uuid.Parse(*req.GroupID)
		var group groupModel.StudentGroupModel
		if err := sc.DB.Where("student_group_id = ?", groupID).Take(&group).Error; err != nil {
			return helper.Error(c, fiber.StatusNotFound, "Group tujuan tidak ditemukan")
		}
		student.AssignGroup(&group)
	}

	if err := sc.DB.Save(&student).Error; err != nil {
		log.Println("[ERROR] Update siswa gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui siswa")
	}

	return helper.Success(c, "Siswa berhasil diperbarui", student)
}

// DELETE /api/a/students/:id — catatan kehadirannya ikut terhapus (satu tx).
func (sc *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attendance_student_id = ?", id).
			Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("student_id = ?", id).Delete(&model.StudentModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	if err != nil {
		log.Println("[ERROR] Hapus siswa gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}

	return helper.Success(c, "Siswa berhasil dihapus", nil)
}
