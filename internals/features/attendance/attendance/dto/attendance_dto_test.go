package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() SaveAttendanceRequest {
	return SaveAttendanceRequest{
		GroupID:   "6b1f5f2e-9c9b-4f43-91f1-2f6a1f3a9d11",
		Date:      "2024-03-04",
		Subject:   "Math",
		StartTime: "08:00",
		EndTime:   "09:00",
		Marks:     map[string]string{"some-id": "present"},
	}
}

func TestSaveAttendanceRequestValidation(t *testing.T) {
	validate := validator.New()

	req := validRequest()
	req.Normalize()
	assert.NoError(t, validate.Struct(req))

	// tanggal salah format
	bad := validRequest()
	bad.Date = "04/03/2024"
	assert.Error(t, validate.Struct(bad))

	// jam bukan "HH:MM"
	bad = validRequest()
	bad.StartTime = "8:00"
	assert.Error(t, validate.Struct(bad))

	// tanpa marks
	bad = validRequest()
	bad.Marks = nil
	assert.Error(t, validate.Struct(bad))

	// groupId bukan uuid
	bad = validRequest()
	bad.GroupID = "bukan-uuid"
	assert.Error(t, validate.Struct(bad))
}

func TestSaveAttendanceRequestParsers(t *testing.T) {
	req := validRequest()

	groupID, err := req.ParsedGroupID()
	require.NoError(t, err)
	assert.Equal(t, "6b1f5f2e-9c9b-4f43-91f1-2f6a1f3a9d11", groupID.String())

	date, err := req.ParsedDate()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", date.Format("2006-01-02"))

	req.Date = "2024-13-40"
	_, err = req.ParsedDate()
	assert.Error(t, err)
}

func TestSaveAttendanceRequestNormalizeTrimsSpaces(t *testing.T) {
	req := validRequest()
	req.Subject = "  Math "
	req.StartTime = " 08:00"
	req.Normalize()

	assert.Equal(t, "Math", req.Subject)
	assert.Equal(t, "08:00", req.StartTime)
}
