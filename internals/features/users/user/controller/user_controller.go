package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// userView: bentuk aman untuk list admin. PlainPassword ikut ditampilkan
// di panel admin (perilaku sistem lama yang dipertahankan).
type userView struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	Roles         []string  `json:"roles"`
	PlainPassword string    `json:"plain_password"`
}

func toView(u *model.UserModel) userView {
	return userView{
		UserID:        u.UserID,
		UserName:      u.UserName,
		Roles:         u.UserRoles,
		PlainPassword: u.PlainPassword,
	}
}

// GET /api/a/users
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	var total int64
	if err := uc.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] Hitung users gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	var users []model.UserModel
	if err := uc.DB.
		Order("user_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Ambil users gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, toView(&users[i]))
	}

	return helper.Success(c, "Daftar user", fiber.Map{
		"users":      views,
		"pagination": helper.BuildPagination(total, paging, len(views)),
	})
}

// GET /api/a/users/:id
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var user model.UserModel
	if err := uc.DB.Where("user_id = ?", id).Take(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.Success(c, "Detail user", toView(&user))
}

// DELETE /api/a/users/:id
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	requesterID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if requesterID == id {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak bisa menghapus akun sendiri")
	}

	res := uc.DB.Where("user_id = ?", id).Delete(&model.UserModel{})
	if res.Error != nil {
		log.Println("[ERROR] Hapus user gagal:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	log.Printf("[SUCCESS] User %s dihapus\n", id)
	return helper.Success(c, "User berhasil dihapus", nil)
}
