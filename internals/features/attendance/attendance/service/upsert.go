// file: internals/features/attendance/attendance/service/upsert.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/attendance/attendance/model"
	schedModel "schoolku_backend/internals/features/attendance/schedule/model"
	studentModel "schoolku_backend/internals/features/schools/student/model"
)

// AttendanceStore: akses persistensi yang dibutuhkan upsert engine.
type AttendanceStore interface {
	// FindStudent: (nil, nil) kalau id tidak ada.
	FindStudent(id uuid.UUID) (*studentModel.StudentModel, error)
	// FindByStudentDateWindow: kunci dedup kanonik (student, date, start, end);
	// (nil, nil) kalau belum ada.
	FindByStudentDateWindow(studentID uuid.UUID, date time.Time, startTime, endTime string) (*model.AttendanceModel, error)
	// Save: insert kalau AttendanceID masih nil, selainnya update in place.
	Save(m *model.AttendanceModel) error
}

type UpsertInput struct {
	GroupID   uuid.UUID
	Schedule  *schedModel.ScheduleModel
	Date      time.Time
	StartTime string
	EndTime   string
	// Marks: student id (string uuid) → status mentah dari klien.
	Marks map[string]string
	// AllowedStatuses: status di luar daftar ini di-normalisasi ke present,
	// bukan ditolak (ketersediaan menang atas validasi ketat).
	AllowedStatuses []string
}

type UpsertResult struct {
	Count      int       `json:"count"`
	Errors     []string  `json:"errors"`
	ScheduleID uuid.UUID `json:"schedule_id"`
}

// Engine memastikan tiap siswa punya tepat satu baris Attendance untuk
// (date, jam) tersebut — update kalau sudah ada, insert kalau belum.
// Siswa yang tidak valid dicatat sebagai error per-baris tanpa membatalkan batch.
type Engine struct {
	Store AttendanceStore
}

func NewEngine(store AttendanceStore) *Engine {
	return &Engine{Store: store}
}

func (e *Engine) Upsert(in UpsertInput) (*UpsertResult, error) {
	res := &UpsertResult{Errors: []string{}}
	if in.Schedule != nil {
		res.ScheduleID = in.Schedule.ScheduleID
	}

	for rawID, rawStatus := range in.Marks {
		studentID, err := uuid.Parse(rawID)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("ID siswa %s tidak valid", rawID))
			continue
		}

		student, err := e.Store.FindStudent(studentID)
		if err != nil {
			return nil, err
		}
		if student == nil || student.StudentGroupID != in.GroupID {
			res.Errors = append(res.Errors, fmt.Sprintf("Siswa %s tidak ditemukan di group ini", rawID))
			continue
		}

		status := rawStatus
		if !model.IsValidStatus(status, in.AllowedStatuses) {
			status = model.StatusPresent
		}

		existing, err := e.Store.FindByStudentDateWindow(studentID, in.Date, in.StartTime, in.EndTime)
		if err != nil {
			return nil, err
		}

		row := existing
		if row == nil {
			row = &model.AttendanceModel{
				AttendanceStudentID: studentID,
				AttendanceDate:      in.Date,
			}
		}

		// group + jam selalu ditulis ulang (denormalisasi dijaga saat tulis)
		row.AttendanceGroupID = in.GroupID
		row.AttendanceStatus = status
		start, end := in.StartTime, in.EndTime
		row.AttendanceStartTime = &start
		row.AttendanceEndTime = &end
		if in.Schedule != nil {
			schedID := in.Schedule.ScheduleID
			row.AttendanceScheduleID = &schedID
		}

		if err := e.Store.Save(row); err != nil {
			return nil, err
		}
		res.Count++
	}

	return res, nil
}
