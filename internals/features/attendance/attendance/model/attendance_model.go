package model

import (
	"time"

	"github.com/google/uuid"
)

// Status kehadiran yang dikenal sistem.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusExcused = "excused"
)

var AllStatuses = []string{StatusPresent, StatusAbsent, StatusLate, StatusExcused}

// TeacherStatuses: jalur self-service teacher hanya boleh present/absent.
var TeacherStatuses = []string{StatusPresent, StatusAbsent}

// AttendanceModel: satu catatan status untuk satu siswa pada satu sesi bertanggal.
// attendance_group_id adalah denormalisasi group si siswa saat tulis (untuk laporan).
// schedule_id nullable: penandaan ad-hoc boleh ada sebelum Schedule-nya terbentuk.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceStudentID  uuid.UUID  `gorm:"type:uuid;not null;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceScheduleID *uuid.UUID `gorm:"type:uuid;column:attendance_schedule_id" json:"attendance_schedule_id,omitempty"`
	AttendanceGroupID    uuid.UUID  `gorm:"type:uuid;not null;column:attendance_group_id" json:"attendance_group_id"`

	AttendanceDate      time.Time `gorm:"type:date;not null;column:attendance_date" json:"attendance_date"`
	AttendanceStatus    string    `gorm:"size:20;not null;column:attendance_status" json:"attendance_status"`
	AttendanceStartTime *string   `gorm:"size:5;column:attendance_start_time" json:"attendance_start_time,omitempty"`
	AttendanceEndTime   *string   `gorm:"size:5;column:attendance_end_time" json:"attendance_end_time,omitempty"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }

// IsValidStatus cek status terhadap daftar yang diizinkan.
func IsValidStatus(status string, allowed []string) bool {
	for _, s := range allowed {
		if s == status {
			return true
		}
	}
	return false
}
