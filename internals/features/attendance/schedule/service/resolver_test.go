package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/attendance/schedule/model"
)

// fakeScheduleStore: ScheduleStore in-memory dengan unique check ala uidx_schedule_slot.
type fakeScheduleStore struct {
	rows []*model.ScheduleModel
}

func (f *fakeScheduleStore) FindBySlot(groupID uuid.UUID, subject, dayOfWeek, startTime, endTime string) (*model.ScheduleModel, error) {
	for _, r := range f.rows {
		if r.ScheduleGroupID == groupID && r.ScheduleSubject == subject &&
			r.ScheduleDayOfWeek == dayOfWeek && r.ScheduleStartTime == startTime && r.ScheduleEndTime == endTime {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleStore) Create(m *model.ScheduleModel) error {
	if existing, _ := f.FindBySlot(m.ScheduleGroupID, m.ScheduleSubject, m.ScheduleDayOfWeek, m.ScheduleStartTime, m.ScheduleEndTime); existing != nil {
		return ErrDuplicateSchedule
	}
	m.ScheduleID = uuid.New()
	f.rows = append(f.rows, m)
	return nil
}

func monday() time.Time {
	return time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC) // Senin
}

func TestResolveCreatesScheduleOnce(t *testing.T) {
	store := &fakeScheduleStore{}
	r := NewResolver(store)
	groupID := uuid.New()

	in := ResolveInput{
		GroupID:   groupID,
		Subject:   "Math",
		Date:      monday(),
		StartTime: "08:00",
		EndTime:   "09:00",
	}

	first, err := r.Resolve(in)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "Monday", first.ScheduleDayOfWeek)
	assert.Len(t, store.rows, 1)

	// panggilan kedua dengan input identik → id sama, tidak ada baris baru
	second, err := r.Resolve(in)
	require.NoError(t, err)
	assert.Equal(t, first.ScheduleID, second.ScheduleID)
	assert.Len(t, store.rows, 1)
}

func TestResolveDifferentSlotAddsRow(t *testing.T) {
	store := &fakeScheduleStore{}
	r := NewResolver(store)
	groupID := uuid.New()

	_, err := r.Resolve(ResolveInput{GroupID: groupID, Subject: "Math", Date: monday(), StartTime: "08:00", EndTime: "09:00"})
	require.NoError(t, err)

	// group/mapel/hari sama tapi jam beda → baris baru, baris lama dibiarkan
	other, err := r.Resolve(ResolveInput{GroupID: groupID, Subject: "Math", Date: monday(), StartTime: "10:00", EndTime: "11:00"})
	require.NoError(t, err)
	assert.Len(t, store.rows, 2)
	assert.NotEqual(t, store.rows[0].ScheduleID, other.ScheduleID)
}

func TestResolveRejectsInvalidSubject(t *testing.T) {
	r := NewResolver(&fakeScheduleStore{})
	_, err := r.Resolve(ResolveInput{GroupID: uuid.New(), Subject: "Biology", Date: monday(), StartTime: "08:00", EndTime: "09:00"})
	assert.ErrorIs(t, err, ErrInvalidSubject)
}

func TestResolveRejectsInvalidTimeWindow(t *testing.T) {
	r := NewResolver(&fakeScheduleStore{})

	_, err := r.Resolve(ResolveInput{GroupID: uuid.New(), Subject: "Math", Date: monday(), StartTime: "09:00", EndTime: "08:00"})
	assert.ErrorIs(t, err, ErrInvalidTimeWindow)

	_, err = r.Resolve(ResolveInput{GroupID: uuid.New(), Subject: "Math", Date: monday(), StartTime: "09:00", EndTime: "09:00"})
	assert.ErrorIs(t, err, ErrInvalidTimeWindow)
}

func TestResolveRereadsAfterLostRace(t *testing.T) {
	store := &fakeScheduleStore{}
	groupID := uuid.New()

	// baris "pemenang" sudah ada, tapi store dipaksa lewat jalur Create dulu
	winner := &model.ScheduleModel{
		ScheduleID:        uuid.New(),
		ScheduleGroupID:   groupID,
		ScheduleSubject:   "French",
		ScheduleDayOfWeek: "Monday",
		ScheduleStartTime: "14:00",
		ScheduleEndTime:   "15:00",
	}

	raced := &racingStore{inner: store, winner: winner}
	r := NewResolver(raced)
	got, err := r.Resolve(ResolveInput{GroupID: groupID, Subject: "French", Date: monday(), StartTime: "14:00", EndTime: "15:00"})
	require.NoError(t, err)
	assert.Equal(t, winner.ScheduleID, got.ScheduleID)
}

// racingStore mensimulasikan request lain yang insert di antara find dan create.
type racingStore struct {
	inner  *fakeScheduleStore
	winner *model.ScheduleModel
	raced  bool
}

func (r *racingStore) FindBySlot(groupID uuid.UUID, subject, dayOfWeek, startTime, endTime string) (*model.ScheduleModel, error) {
	if !r.raced {
		return nil, nil // belum kelihatan saat find pertama
	}
	return r.winner, nil
}

func (r *racingStore) Create(m *model.ScheduleModel) error {
	r.raced = true
	return ErrDuplicateSchedule
}
