package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	schoolModel "schoolku_backend/internals/features/schools/school/model"
	groupModel "schoolku_backend/internals/features/schools/student_group/model"
	"schoolku_backend/internals/features/schools/teacher/dto"
	"schoolku_backend/internals/features/schools/teacher/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

// GET /api/a/teachers?schoolId=
func (tc *TeacherController) GetTeachers(c *fiber.Ctx) error {
	q := tc.DB.Model(&model.TeacherModel{})

	if raw := c.Query("schoolId"); raw != "" {
		schoolID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "schoolId tidak valid")
		}
		q = q.Where("teacher_school_id = ?", schoolID)
	}

	var teachers []model.TeacherModel
	if err := q.Order("teacher_last_name ASC, teacher_first_name ASC").Find(&teachers).Error; err != nil {
		log.Println("[ERROR] Ambil teachers gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data teacher")
	}

	return helper.Success(c, "Daftar teacher", fiber.Map{
		"total":    len(teachers),
		"teachers": teachers,
	})
}

// POST /api/a/teachers — buat profil teacher SEKALIGUS user login-nya (satu tx).
func (tc *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := tc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	schoolID, _ := uuid.Parse(req.SchoolID)
	var school schoolModel.SchoolModel
	if err := tc.DB.Where("school_id = ?", schoolID).Take(&school).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	var teacher model.TeacherModel
	err = tc.DB.Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_name = ?", req.UserName).
			Count(&exists).Error; err != nil {
			return err
		}
		if exists > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Username sudah dipakai")
		}

		user := userModel.UserModel{
			UserName:      req.UserName,
			UserRoles:     []string{constants.RoleTeacher},
			Password:      string(hashed),
			PlainPassword: req.Password,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		teacher = req.ToModel(schoolID, user.UserID)
		return tx.Create(&teacher).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] Buat teacher gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat teacher")
	}

	log.Printf("[SUCCESS] Teacher dibuat: %s %s (%s)\n", teacher.TeacherFirstName, teacher.TeacherLastName, req.UserName)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher berhasil dibuat", teacher)
}

// PUT /api/a/teachers/:id
func (tc *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID teacher tidak valid")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := tc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var teacher model.TeacherModel
	if err := tc.DB.Where("teacher_id = ?", id).Take(&teacher).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
	}

	req.ApplyTo(&teacher)
	if err := tc.DB.Save(&teacher).Error; err != nil {
		log.Println("[ERROR] Update teacher gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui teacher")
	}

	return helper.Success(c, "Teacher berhasil diperbarui", teacher)
}

// DELETE /api/a/teachers/:id — lepas dulu group yang dipegang, lalu hapus
// profil + user login dalam satu tx.
func (tc *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID teacher tidak valid")
	}

	var teacher model.TeacherModel
	if err := tc.DB.Where("teacher_id = ?", id).Take(&teacher).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
	}

	err = tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&groupModel.StudentGroupModel{}).
			Where("student_group_teacher_id = ?", id).
			Update("student_group_teacher_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("teacher_id = ?", id).Delete(&model.TeacherModel{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", teacher.TeacherUserID).Delete(&userModel.UserModel{}).Error
	})
	if err != nil {
		log.Println("[ERROR] Hapus teacher gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus teacher")
	}

	return helper.Success(c, "Teacher berhasil dihapus", nil)
}
