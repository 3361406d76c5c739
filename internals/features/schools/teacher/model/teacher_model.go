package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherModel: profil pengajar, selalu terikat ke satu sekolah dan satu user login.
type TeacherModel struct {
	TeacherID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherFirstName string    `gorm:"size:100;not null;column:teacher_first_name" json:"teacher_first_name"`
	TeacherLastName  string    `gorm:"size:100;not null;column:teacher_last_name" json:"teacher_last_name"`
	TeacherPhone     *string   `gorm:"size:30;column:teacher_phone" json:"teacher_phone,omitempty"`

	TeacherSchoolID uuid.UUID `gorm:"type:uuid;not null;column:teacher_school_id" json:"teacher_school_id"`
	TeacherUserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:teacher_user_id" json:"teacher_user_id"`

	TeacherCreatedAt time.Time  `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt *time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
