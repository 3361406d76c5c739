package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleModel: slot mingguan berulang (group, mapel, hari, jam) — bukan kejadian
// bertanggal. Kunci natural dijaga unique index supaya resolver tidak bisa
// menghasilkan baris ganda saat dua request balapan.
type ScheduleModel struct {
	ScheduleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:schedule_id" json:"schedule_id"`

	ScheduleGroupID   uuid.UUID `gorm:"type:uuid;not null;column:schedule_group_id;uniqueIndex:uidx_schedule_slot" json:"schedule_group_id"`
	ScheduleSubject   string    `gorm:"size:30;not null;column:schedule_subject;uniqueIndex:uidx_schedule_slot" json:"schedule_subject"`
	ScheduleDayOfWeek string    `gorm:"size:10;not null;column:schedule_day_of_week;uniqueIndex:uidx_schedule_slot" json:"schedule_day_of_week"`
	ScheduleStartTime string    `gorm:"size:5;not null;column:schedule_start_time;uniqueIndex:uidx_schedule_slot" json:"schedule_start_time"`
	ScheduleEndTime   string    `gorm:"size:5;not null;column:schedule_end_time;uniqueIndex:uidx_schedule_slot" json:"schedule_end_time"`

	ScheduleCreatedAt time.Time  `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt *time.Time `gorm:"column:schedule_updated_at;autoUpdateTime" json:"schedule_updated_at,omitempty"`
}

func (ScheduleModel) TableName() string { return "schedules" }
