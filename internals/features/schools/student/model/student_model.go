package model

import (
	"time"

	"github.com/google/uuid"

	groupModel "schoolku_backend/internals/features/schools/student_group/model"
)

// StudentModel: siswa milik satu group; student_school_id adalah salinan denormalisasi
// dari sekolah si group (untuk query laporan). Jangan set langsung — pakai AssignGroup.
type StudentModel struct {
	StudentID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentFirstName      string     `gorm:"size:100;not null;column:student_first_name" json:"student_first_name"`
	StudentLastName       string     `gorm:"size:100;not null;column:student_last_name" json:"student_last_name"`
	StudentDateOfBirth    *time.Time `gorm:"type:date;column:student_date_of_birth" json:"student_date_of_birth,omitempty"`
	StudentNiveauScolaire string     `gorm:"size:50;not null;column:student_niveau_scolaire" json:"student_niveau_scolaire"`

	StudentGroupID  uuid.UUID `gorm:"type:uuid;not null;column:student_group_id" json:"student_group_id"`
	StudentSchoolID uuid.UUID `gorm:"type:uuid;not null;column:student_school_id" json:"student_school_id"`

	StudentCreatedAt time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

// AssignGroup memindahkan siswa ke group lain sekaligus menyinkronkan
// salinan school — satu-satunya jalur yang boleh mengubah dua kolom ini.
func (s *StudentModel) AssignGroup(group *groupModel.StudentGroupModel) {
	s.StudentGroupID = group.StudentGroupID
	s.StudentSchoolID = group.StudentGroupSchoolID
}
