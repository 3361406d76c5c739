package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	teacherModel "schoolku_backend/internals/features/schools/teacher/model"
	"schoolku_backend/internals/features/users/auth/dto"
	authService "schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ac.DB.Where("user_name = ?", req.UserName).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
	}
	if err != nil {
		log.Println("[ERROR] Login query gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	// Klaim teacher_id hanya diisi kalau user punya profil teacher
	var teacherID *uuid.UUID
	var teacher teacherModel.TeacherModel
	err = ac.DB.Where("teacher_user_id = ?", user.UserID).Take(&teacher).Error
	if err == nil {
		teacherID = &teacher.TeacherID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Lookup teacher saat login gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	token, err := authService.CreateAccessToken(&user, teacherID)
	if err != nil {
		return err
	}

	brief := dto.LoginUserBrief{
		UserID:   user.UserID.String(),
		UserName: user.UserName,
		Role:     user.PrimaryRole(),
	}
	if teacherID != nil {
		s := teacherID.String()
		brief.TeacherID = &s
	}

	log.Printf("[SUCCESS] Login: %s (%s)\n", user.UserName, brief.Role)
	return helper.Success(c, "Login berhasil", dto.LoginResponse{Token: token, User: brief})
}

// POST /api/auth/register — hanya admin (dijaga route)
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var exists int64
	if err := ac.DB.Model(&userModel.UserModel{}).
		Where("user_name = ?", req.UserName).
		Count(&exists).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa username")
	}
	if exists > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Username sudah dipakai")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := req.ToModel(string(hashed))
	if err := ac.DB.Create(&user).Error; err != nil {
		log.Println("[ERROR] Register gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	log.Printf("[SUCCESS] User terdaftar: %s\n", user.UserName)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User berhasil dibuat", fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
		"roles":     user.UserRoles,
	})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.Where("user_id = ?", userID).Take(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	resp := fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
		"roles":     user.UserRoles,
	}

	var teacher teacherModel.TeacherModel
	if err := ac.DB.Where("teacher_user_id = ?", user.UserID).Take(&teacher).Error; err == nil {
		resp["teacher"] = teacher
	}

	return helper.Success(c, "Profil user", resp)
}
