package dto

import (
	"strings"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/users/user/model"
)

/* =========================================================
   LOGIN
   ========================================================= */

type LoginRequest struct {
	UserName string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=4,max=100"`
}

func (r *LoginRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
}

type LoginResponse struct {
	Token string         `json:"token"`
	User  LoginUserBrief `json:"user"`
}

type LoginUserBrief struct {
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name"`
	Role      string  `json:"role"`
	TeacherID *string `json:"teacher_id,omitempty"`
}

/* =========================================================
   REGISTER (admin only)
   ========================================================= */

type RegisterRequest struct {
	UserName string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=4,max=100"`
	Role     string `json:"role" validate:"required,oneof=admin teacher"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

// ToModel: password di-hash oleh controller, bukan di sini.
func (r RegisterRequest) ToModel(hashedPassword string) model.UserModel {
	role := r.Role
	if role == "" {
		role = constants.RoleTeacher
	}
	return model.UserModel{
		UserName:      r.UserName,
		UserRoles:     []string{role},
		Password:      hashedPassword,
		PlainPassword: r.Password,
	}
}
