// file: internals/features/attendance/schedule/service/store.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/attendance/schedule/model"
)

// GormScheduleStore: implementasi ScheduleStore di atas gorm.
// DB boleh berupa transaksi aktif (ctrl memanggil dalam tx).
type GormScheduleStore struct {
	DB *gorm.DB
}

func NewGormScheduleStore(db *gorm.DB) *GormScheduleStore {
	return &GormScheduleStore{DB: db}
}

func (s *GormScheduleStore) FindBySlot(groupID uuid.UUID, subject, dayOfWeek, startTime, endTime string) (*model.ScheduleModel, error) {
	var m model.ScheduleModel
	err := s.DB.
		Where("schedule_group_id = ?", groupID).
		Where("schedule_subject = ?", subject).
		Where("schedule_day_of_week = ?", dayOfWeek).
		Where("schedule_start_time = ?", startTime).
		Where("schedule_end_time = ?", endTime).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create pakai ON CONFLICT DO NOTHING pada uidx_schedule_slot: insert yang
// kalah balapan tidak membuat transaksi pembungkus ikut abort di postgres,
// cukup lapor duplikat supaya resolver membaca baris pemenang.
func (s *GormScheduleStore) Create(m *model.ScheduleModel) error {
	res := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(m)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSchedule
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDuplicateSchedule
	}
	return nil
}
