package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentGroupModel: kelas/kelompok siswa milik satu sekolah, opsional dipegang satu teacher.
type StudentGroupModel struct {
	StudentGroupID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_group_id" json:"student_group_id"`
	StudentGroupName string    `gorm:"size:100;not null;column:student_group_name" json:"student_group_name"`

	StudentGroupSchoolID  uuid.UUID  `gorm:"type:uuid;not null;column:student_group_school_id" json:"student_group_school_id"`
	StudentGroupTeacherID *uuid.UUID `gorm:"type:uuid;column:student_group_teacher_id" json:"student_group_teacher_id,omitempty"`

	StudentGroupCreatedAt time.Time  `gorm:"column:student_group_created_at;autoCreateTime" json:"student_group_created_at"`
	StudentGroupUpdatedAt *time.Time `gorm:"column:student_group_updated_at;autoUpdateTime" json:"student_group_updated_at,omitempty"`
}

func (StudentGroupModel) TableName() string { return "student_groups" }
