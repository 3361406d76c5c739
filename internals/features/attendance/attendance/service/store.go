// file: internals/features/attendance/attendance/service/store.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/attendance/attendance/model"
	studentModel "schoolku_backend/internals/features/schools/student/model"
)

// GormAttendanceStore mengimplementasikan AttendanceStore + WorkloadStore
// di atas gorm. DB boleh berupa transaksi aktif.
type GormAttendanceStore struct {
	DB *gorm.DB
}

func NewGormAttendanceStore(db *gorm.DB) *GormAttendanceStore {
	return &GormAttendanceStore{DB: db}
}

func (s *GormAttendanceStore) FindStudent(id uuid.UUID) (*studentModel.StudentModel, error) {
	var m studentModel.StudentModel
	err := s.DB.Where("student_id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormAttendanceStore) FindByStudentDateWindow(studentID uuid.UUID, date time.Time, startTime, endTime string) (*model.AttendanceModel, error) {
	var m model.AttendanceModel
	err := s.DB.
		Where("attendance_student_id = ?", studentID).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		Where("attendance_start_time = ?", startTime).
		Where("attendance_end_time = ?", endTime).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormAttendanceStore) Save(m *model.AttendanceModel) error {
	return s.DB.Save(m).Error
}

func (s *GormAttendanceStore) TeacherWeekSessions(teacherID uuid.UUID, weekStart, weekEnd time.Time) ([]SessionKey, error) {
	type row struct {
		Date      time.Time `gorm:"column:attendance_date"`
		StartTime string    `gorm:"column:attendance_start_time"`
		EndTime   string    `gorm:"column:attendance_end_time"`
		GroupID   uuid.UUID `gorm:"column:attendance_group_id"`
	}
	var rows []row
	err := s.DB.Table("attendances").
		Select("DISTINCT attendance_date, attendance_start_time, attendance_end_time, attendance_group_id").
		Joins("JOIN student_groups ON student_groups.student_group_id = attendances.attendance_group_id").
		Where("student_groups.student_group_teacher_id = ?", teacherID).
		Where("attendance_date BETWEEN ? AND ?", weekStart.Format("2006-01-02"), weekEnd.Format("2006-01-02")).
		Where("attendance_start_time IS NOT NULL").
		Where("attendance_end_time IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	keys := make([]SessionKey, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, SessionKey{
			Date:      r.Date.Format("2006-01-02"),
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			GroupID:   r.GroupID,
		})
	}
	return keys, nil
}
