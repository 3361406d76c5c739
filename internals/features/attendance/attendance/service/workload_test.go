package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOptionsGrid(t *testing.T) {
	// 08:00 .. 19:00 langkah 30 menit = 23 pilihan
	require.Len(t, TimeOptions, 23)
	assert.Equal(t, "08:00", TimeOptions[0])
	assert.Equal(t, "08:30", TimeOptions[1])
	assert.Equal(t, "19:00", TimeOptions[22])
}

func TestValidateRejectsTimeOutsideGrid(t *testing.T) {
	v := NewWorkloadValidator(newFakeStore())
	teacherID, groupID := uuid.New(), uuid.New()

	err := v.Validate(teacherID, groupID, mondayDate(), "07:30", "09:00")
	assert.ErrorIs(t, err, ErrTimeNotAllowed)

	err = v.Validate(teacherID, groupID, mondayDate(), "08:15", "09:00")
	assert.ErrorIs(t, err, ErrTimeNotAllowed)

	err = v.Validate(teacherID, groupID, mondayDate(), "18:00", "19:30")
	assert.ErrorIs(t, err, ErrTimeNotAllowed)
}

func TestValidateRejectsInvalidWindow(t *testing.T) {
	v := NewWorkloadValidator(newFakeStore())
	teacherID, groupID := uuid.New(), uuid.New()

	err := v.Validate(teacherID, groupID, mondayDate(), "10:00", "09:00")
	assert.ErrorIs(t, err, ErrInvalidTimeWindow)

	err = v.Validate(teacherID, groupID, mondayDate(), "10:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidTimeWindow)
}

func TestValidateRejectsSessionOverSixHours(t *testing.T) {
	v := NewWorkloadValidator(newFakeStore())
	teacherID, groupID := uuid.New(), uuid.New()

	// 08:00–15:00 = 7 jam → ditolak
	err := v.Validate(teacherID, groupID, mondayDate(), "08:00", "15:00")
	assert.ErrorIs(t, err, ErrSessionTooLong)

	// 08:00–14:00 = tepat 6 jam → lolos (cap inklusif)
	err = v.Validate(teacherID, groupID, mondayDate(), "08:00", "14:00")
	assert.NoError(t, err)
}

func TestValidateWeeklyCapBoundary(t *testing.T) {
	store := newFakeStore()
	teacherID, groupID := uuid.New(), uuid.New()

	// Sudah ada 8 jam minggu ini (dua sesi 4 jam, Senin + Selasa)
	store.sessions = []SessionKey{
		{Date: "2024-03-04", StartTime: "08:00", EndTime: "12:00", GroupID: groupID},
		{Date: "2024-03-05", StartTime: "08:00", EndTime: "12:00", GroupID: groupID},
	}
	v := NewWorkloadValidator(store)

	wednesday := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	// +1 jam → total 9, tepat di batas → lolos
	err := v.Validate(teacherID, groupID, wednesday, "08:00", "09:00")
	assert.NoError(t, err)

	// +2 jam → total 10 > 9 → ditolak
	err = v.Validate(teacherID, groupID, wednesday, "08:00", "10:00")
	assert.ErrorIs(t, err, ErrWeeklyCapExceeded)
}

func TestValidateRemarkingExistingSessionNotDoubleCounted(t *testing.T) {
	store := newFakeStore()
	teacherID, groupID := uuid.New(), uuid.New()

	// 9 jam penuh sudah tercatat, termasuk sesi Senin 08:00–12:00
	store.sessions = []SessionKey{
		{Date: "2024-03-04", StartTime: "08:00", EndTime: "12:00", GroupID: groupID},
		{Date: "2024-03-05", StartTime: "08:00", EndTime: "13:00", GroupID: groupID},
	}
	v := NewWorkloadValidator(store)

	// Mark ulang sesi Senin yang sama → bukan jam baru → lolos
	err := v.Validate(teacherID, groupID, mondayDate(), "08:00", "12:00")
	assert.NoError(t, err)

	// Sesi baru di jam lain → melewati batas → ditolak
	err = v.Validate(teacherID, groupID, mondayDate(), "14:00", "15:00")
	assert.ErrorIs(t, err, ErrWeeklyCapExceeded)
}
