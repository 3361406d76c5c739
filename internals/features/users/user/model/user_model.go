package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel merepresentasikan tabel users di database.
// PlainPassword sengaja disimpan apa adanya untuk tampilan admin,
// mengikuti perilaku sistem lama (kelemahan yang dipertahankan).
type UserModel struct {
	UserID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName      string         `gorm:"size:50;unique;not null;column:user_name" json:"user_name"`
	UserRoles     pq.StringArray `gorm:"type:text[];not null;column:user_roles" json:"user_roles"`
	Password      string         `gorm:"not null;column:user_password" json:"-"`
	PlainPassword string         `gorm:"column:user_plain_password" json:"-"`

	CreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

// HasRole cek apakah user memegang role tertentu.
func (u *UserModel) HasRole(role string) bool {
	for _, r := range u.UserRoles {
		if r == role {
			return true
		}
	}
	return false
}

// PrimaryRole: role pertama di daftar, dipakai untuk klaim JWT.
func (u *UserModel) PrimaryRole() string {
	if len(u.UserRoles) == 0 {
		return ""
	}
	return u.UserRoles[0]
}
