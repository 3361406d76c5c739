// file: internals/features/attendance/schedule/service/resolver.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/attendance/schedule/model"
	helper "schoolku_backend/internals/helpers"
)

// Mata pelajaran yang dikenal sistem.
var AllowedSubjects = []string{"Math", "French"}

var (
	ErrInvalidSubject    = errors.New("mata pelajaran tidak valid")
	ErrInvalidTimeWindow = errors.New("jam selesai harus setelah jam mulai")

	// Dikembalikan store saat insert kena unique index kunci natural
	// (request lain menang balapan); resolver tinggal baca ulang.
	ErrDuplicateSchedule = errors.New("schedule dengan slot yang sama sudah ada")
)

// ScheduleStore: akses persistensi yang dibutuhkan resolver.
// Implementasi gorm ada di store.go; test pakai fake in-memory.
type ScheduleStore interface {
	// FindBySlot cari schedule dengan kunci natural persis; (nil, nil) kalau tidak ada.
	FindBySlot(groupID uuid.UUID, subject, dayOfWeek, startTime, endTime string) (*model.ScheduleModel, error)
	Create(m *model.ScheduleModel) error
}

type ResolveInput struct {
	GroupID   uuid.UUID
	Subject   string
	Date      time.Time
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
}

// Resolver memetakan deskriptor slot mingguan ke satu baris Schedule kanonik,
// membuat baris baru hanya kalau belum ada (find-or-create, idempoten).
type Resolver struct {
	Store ScheduleStore
}

func NewResolver(store ScheduleStore) *Resolver {
	return &Resolver{Store: store}
}

func (r *Resolver) Resolve(in ResolveInput) (*model.ScheduleModel, error) {
	if !isAllowedSubject(in.Subject) {
		return nil, ErrInvalidSubject
	}

	startMin, err := helper.ParseClock(in.StartTime)
	if err != nil {
		return nil, err
	}
	endMin, err := helper.ParseClock(in.EndTime)
	if err != nil {
		return nil, err
	}
	if endMin <= startMin {
		return nil, ErrInvalidTimeWindow
	}

	dayOfWeek := helper.DayOfWeekName(in.Date)

	existing, err := r.Store.FindBySlot(in.GroupID, in.Subject, dayOfWeek, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	sched := &model.ScheduleModel{
		ScheduleGroupID:   in.GroupID,
		ScheduleSubject:   in.Subject,
		ScheduleDayOfWeek: dayOfWeek,
		ScheduleStartTime: in.StartTime,
		ScheduleEndTime:   in.EndTime,
	}
	if err := r.Store.Create(sched); err != nil {
		if errors.Is(err, ErrDuplicateSchedule) {
			// Kalah balapan dengan request lain — unique index menahan duplikat,
			// baca ulang baris pemenang.
			return r.Store.FindBySlot(in.GroupID, in.Subject, dayOfWeek, in.StartTime, in.EndTime)
		}
		return nil, err
	}
	return sched, nil
}

func isAllowedSubject(subject string) bool {
	for _, s := range AllowedSubjects {
		if s == subject {
			return true
		}
	}
	return false
}
