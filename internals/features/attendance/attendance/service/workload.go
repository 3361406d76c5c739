// file: internals/features/attendance/attendance/service/workload.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	helper "schoolku_backend/internals/helpers"
)

// Batas beban mengajar di jalur self-service teacher.
const (
	MaxSessionHours = 6.0
	MaxWeeklyHours  = 9.0
)

var (
	ErrInvalidTimeWindow = errors.New("jam selesai harus setelah jam mulai")
	ErrTimeNotAllowed    = errors.New("jam harus dipilih dari grid setengah jam 08:00–19:00")
	ErrSessionTooLong    = errors.New("durasi sesi maksimum 6 jam")
	ErrWeeklyCapExceeded = errors.New("batas mingguan 9 jam terlampaui")
)

// TimeOptions: grid setengah jam 08:00 .. 19:00 (inklusif).
var TimeOptions = buildTimeOptions(8*60, 19*60, 30)

func buildTimeOptions(startMin, endMin, stepMin int) []string {
	var opts []string
	for m := startMin; m <= endMin; m += stepMin {
		opts = append(opts, clockString(m))
	}
	return opts
}

func clockString(min int) string {
	h, m := min/60, min%60
	return string([]byte{
		byte('0' + h/10), byte('0' + h%10), ':',
		byte('0' + m/10), byte('0' + m%10),
	})
}

// SessionKey: satu sesi unik (tanggal, jam, group) yang sudah pernah
// dicatat kehadirannya oleh si teacher.
type SessionKey struct {
	Date      string // "YYYY-MM-DD"
	StartTime string
	EndTime   string
	GroupID   uuid.UUID
}

// WorkloadStore: riwayat sesi mingguan per teacher.
type WorkloadStore interface {
	// TeacherWeekSessions: sesi DISTINCT (tanggal, jam mulai, jam selesai, group)
	// milik teacher dalam rentang [weekStart, weekEnd].
	TeacherWeekSessions(teacherID uuid.UUID, weekStart, weekEnd time.Time) ([]SessionKey, error)
}

// WorkloadValidator menolak penandaan yang melanggar batas sesi/mingguan
// SEBELUM ada tulisan apa pun.
type WorkloadValidator struct {
	Store WorkloadStore
}

func NewWorkloadValidator(store WorkloadStore) *WorkloadValidator {
	return &WorkloadValidator{Store: store}
}

func (v *WorkloadValidator) Validate(teacherID, groupID uuid.UUID, date time.Time, startTime, endTime string) error {
	if !containsOption(startTime) || !containsOption(endTime) {
		return ErrTimeNotAllowed
	}

	duration := helper.DurationHours(startTime, endTime)
	if duration == 0 {
		return ErrInvalidTimeWindow
	}
	if duration > MaxSessionHours {
		return ErrSessionTooLong
	}

	weekStart, weekEnd := helper.WeekBounds(date)
	sessions, err := v.Store.TeacherWeekSessions(teacherID, weekStart, weekEnd)
	if err != nil {
		return err
	}

	targetDate := date.Format("2006-01-02")
	totalHours := 0.0
	sessionExists := false
	for _, s := range sessions {
		totalHours += helper.DurationHours(s.StartTime, s.EndTime)
		if s.Date == targetDate && s.GroupID == groupID && s.StartTime == startTime && s.EndTime == endTime {
			sessionExists = true
		}
	}

	// Sesi yang sama di-mark ulang tidak dihitung dobel.
	projected := totalHours
	if !sessionExists {
		projected += duration
	}
	if projected > MaxWeeklyHours {
		return ErrWeeklyCapExceeded
	}
	return nil
}

func containsOption(t string) bool {
	for _, o := range TimeOptions {
		if o == t {
			return true
		}
	}
	return false
}
