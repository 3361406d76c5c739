package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/schools/school/dto"
	"schoolku_backend/internals/features/schools/school/model"
	groupModel "schoolku_backend/internals/features/schools/student_group/model"
	teacherModel "schoolku_backend/internals/features/schools/teacher/model"
	helper "schoolku_backend/internals/helpers"
)

type SchoolController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db, Validate: validator.New()}
}

// GET /api/a/schools
func (sc *SchoolController) GetSchools(c *fiber.Ctx) error {
	var schools []model.SchoolModel
	if err := sc.DB.Order("school_name ASC").Find(&schools).Error; err != nil {
		log.Println("[ERROR] Ambil schools gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	return helper.Success(c, "Daftar sekolah", fiber.Map{
		"total":   len(schools),
		"schools": schools,
	})
}

// GET /api/a/schools/:id
func (sc *SchoolController) GetSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}

	var school model.SchoolModel
	if err := sc.DB.Where("school_id = ?", id).Take(&school).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
	}

	return helper.Success(c, "Detail sekolah", school)
}

// POST /api/a/schools
func (sc *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := sc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	school := req.ToModel()
	if err := sc.DB.Create(&school).Error; err != nil {
		log.Println("[ERROR] Buat sekolah gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat sekolah")
	}

	log.Printf("[SUCCESS] Sekolah dibuat: %s\n", school.SchoolName)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sekolah berhasil dibuat", school)
}

// PUT /api/a/schools/:id
func (sc *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}

	var req dto.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := sc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var school model.SchoolModel
	if err := sc.DB.Where("school_id = ?", id).Take(&school).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
	}

	req.ApplyTo(&school)
	if err := sc.DB.Save(&school).Error; err != nil {
		log.Println("[ERROR] Update sekolah gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui sekolah")
	}

	return helper.Success(c, "Sekolah berhasil diperbarui", school)
}

// DELETE /api/a/schools/:id — ditolak selama masih punya group atau teacher.
func (sc *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}

	var groupCount int64
	if err := sc.DB.Model(&groupModel.StudentGroupModel{}).
		Where("student_group_school_id = ?", id).
		Count(&groupCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa group sekolah")
	}
	if groupCount > 0 {
		return helper.Error(c, fiber.StatusBadRequest,
			"Sekolah masih punya group — pindahkan atau hapus group-nya dulu")
	}

	var teacherCount int64
	if err := sc.DB.Model(&teacherModel.TeacherModel{}).
		Where("teacher_school_id = ?", id).
		Count(&teacherCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa teacher sekolah")
	}
	if teacherCount > 0 {
		return helper.Error(c, fiber.StatusBadRequest,
			"Sekolah masih punya teacher — pindahkan atau hapus teacher-nya dulu")
	}

	res := sc.DB.Where("school_id = ?", id).Delete(&model.SchoolModel{})
	if res.Error != nil {
		log.Println("[ERROR] Hapus sekolah gagal:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus sekolah")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
	}

	return helper.Success(c, "Sekolah berhasil dihapus", nil)
}
