package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/attendance/attendance/model"
	schedModel "schoolku_backend/internals/features/attendance/schedule/model"
	studentModel "schoolku_backend/internals/features/schools/student/model"
)

// fakeAttendanceStore: AttendanceStore + WorkloadStore in-memory untuk test.
type fakeAttendanceStore struct {
	students map[uuid.UUID]*studentModel.StudentModel
	rows     []*model.AttendanceModel
	sessions []SessionKey
}

func newFakeStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{students: map[uuid.UUID]*studentModel.StudentModel{}}
}

func (f *fakeAttendanceStore) addStudent(groupID uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.students[id] = &studentModel.StudentModel{StudentID: id, StudentGroupID: groupID}
	return id
}

func (f *fakeAttendanceStore) FindStudent(id uuid.UUID) (*studentModel.StudentModel, error) {
	return f.students[id], nil
}

func (f *fakeAttendanceStore) FindByStudentDateWindow(studentID uuid.UUID, date time.Time, startTime, endTime string) (*model.AttendanceModel, error) {
	d := date.Format("2006-01-02")
	for _, r := range f.rows {
		if r.AttendanceStudentID == studentID && r.AttendanceDate.Format("2006-01-02") == d &&
			r.AttendanceStartTime != nil && *r.AttendanceStartTime == startTime &&
			r.AttendanceEndTime != nil && *r.AttendanceEndTime == endTime {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceStore) Save(m *model.AttendanceModel) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
		f.rows = append(f.rows, m)
	}
	return nil
}

func (f *fakeAttendanceStore) TeacherWeekSessions(teacherID uuid.UUID, weekStart, weekEnd time.Time) ([]SessionKey, error) {
	return f.sessions, nil
}

func testSchedule(groupID uuid.UUID) *schedModel.ScheduleModel {
	return &schedModel.ScheduleModel{
		ScheduleID:        uuid.New(),
		ScheduleGroupID:   groupID,
		ScheduleSubject:   "Math",
		ScheduleDayOfWeek: "Monday",
		ScheduleStartTime: "08:00",
		ScheduleEndTime:   "09:00",
	}
}

func mondayDate() time.Time {
	return time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
}

func TestUpsertCreatesRowsForGroupStudents(t *testing.T) {
	store := newFakeStore()
	groupID := uuid.New()
	a := store.addStudent(groupID)
	b := store.addStudent(groupID)
	sched := testSchedule(groupID)

	engine := NewEngine(store)
	res, err := engine.Upsert(UpsertInput{
		GroupID:   groupID,
		Schedule:  sched,
		Date:      mondayDate(),
		StartTime: "08:00",
		EndTime:   "09:00",
		Marks: map[string]string{
			a.String(): model.StatusPresent,
			b.String(): model.StatusAbsent,
		},
		AllowedStatuses: model.TeacherStatuses,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Count)
	assert.Empty(t, res.Errors)
	assert.Equal(t, sched.ScheduleID, res.ScheduleID)
	require.Len(t, store.rows, 2)
	for _, r := range store.rows {
		assert.Equal(t, groupID, r.AttendanceGroupID)
		require.NotNil(t, r.AttendanceScheduleID)
		assert.Equal(t, sched.ScheduleID, *r.AttendanceScheduleID)
	}
}

func TestUpsertUpdatesExistingRowInsteadOfDuplicating(t *testing.T) {
	store := newFakeStore()
	groupID := uuid.New()
	a := store.addStudent(groupID)
	b := store.addStudent(groupID)
	sched := testSchedule(groupID)
	engine := NewEngine(store)

	in := UpsertInput{
		GroupID: groupID, Schedule: sched, Date: mondayDate(),
		StartTime: "08:00", EndTime: "09:00",
		Marks:           map[string]string{a.String(): model.StatusPresent, b.String(): model.StatusAbsent},
		AllowedStatuses: model.AllStatuses,
	}
	_, err := engine.Upsert(in)
	require.NoError(t, err)
	require.Len(t, store.rows, 2)

	// mark ulang hanya siswa A dengan status baru → tetap 2 baris, status A berubah, B utuh
	in.Marks = map[string]string{a.String(): model.StatusLate}
	res, err := engine.Upsert(in)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Len(t, store.rows, 2)

	rowA, _ := store.FindByStudentDateWindow(a, mondayDate(), "08:00", "09:00")
	require.NotNil(t, rowA)
	assert.Equal(t, model.StatusLate, rowA.AttendanceStatus)

	rowB, _ := store.FindByStudentDateWindow(b, mondayDate(), "08:00", "09:00")
	require.NotNil(t, rowB)
	assert.Equal(t, model.StatusAbsent, rowB.AttendanceStatus)
}

func TestUpsertSkipsStudentsOutsideGroup(t *testing.T) {
	store := newFakeStore()
	groupID := uuid.New()
	otherGroup := uuid.New()
	inside := store.addStudent(groupID)
	outside := store.addStudent(otherGroup)
	engine := NewEngine(store)

	marks := map[string]string{}
	marks[inside.String()] = model.StatusPresent
	marks[outside.String()] = model.StatusPresent
	marks["bukan-uuid"] = model.StatusPresent
	marks[uuid.New().String()] = model.StatusPresent // id tidak dikenal

	res, err := engine.Upsert(UpsertInput{
		GroupID: groupID, Schedule: testSchedule(groupID), Date: mondayDate(),
		StartTime: "08:00", EndTime: "09:00",
		Marks:           marks,
		AllowedStatuses: model.AllStatuses,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Count)
	assert.Len(t, res.Errors, 3)
	assert.Len(t, store.rows, 1)
}

func TestUpsertNormalizesUnknownStatusToPresent(t *testing.T) {
	store := newFakeStore()
	groupID := uuid.New()
	a := store.addStudent(groupID)
	engine := NewEngine(store)

	// jalur teacher: "late" di luar {present, absent} → tersimpan "present"
	res, err := engine.Upsert(UpsertInput{
		GroupID: groupID, Schedule: testSchedule(groupID), Date: mondayDate(),
		StartTime: "08:00", EndTime: "09:00",
		Marks:           map[string]string{a.String(): model.StatusLate},
		AllowedStatuses: model.TeacherStatuses,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)

	row, _ := store.FindByStudentDateWindow(a, mondayDate(), "08:00", "09:00")
	require.NotNil(t, row)
	assert.Equal(t, model.StatusPresent, row.AttendanceStatus)
}
