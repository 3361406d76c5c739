package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	helper "schoolku_backend/internals/helpers"
)

// SaveAttendanceRequest: payload penandaan batch (jalur admin maupun teacher).
// Attendance memetakan student id (uuid string) → status mentah.
type SaveAttendanceRequest struct {
	GroupID   string            `json:"groupId" validate:"required,uuid4"`
	Date      string            `json:"date" validate:"required,datetime=2006-01-02"`
	Subject   string            `json:"subject" validate:"required"`
	StartTime string            `json:"startTime" validate:"required,len=5"`
	EndTime   string            `json:"endTime" validate:"required,len=5"`
	Marks     map[string]string `json:"attendance" validate:"required,min=1"`
}

func (r *SaveAttendanceRequest) Normalize() {
	r.Subject = strings.TrimSpace(r.Subject)
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.EndTime = strings.TrimSpace(r.EndTime)
}

func (r SaveAttendanceRequest) ParsedGroupID() (uuid.UUID, error) {
	return uuid.Parse(r.GroupID)
}

func (r SaveAttendanceRequest) ParsedDate() (time.Time, error) {
	return helper.ParseDateYYYYMMDD(r.Date)
}

// HistoryFilter: query string riwayat kehadiran (semua opsional).
type HistoryFilter struct {
	SchoolID  string `query:"schoolId"`
	GroupID   string `query:"groupId"`
	StudentID string `query:"studentId"`
	Subject   string `query:"subject"`
	Status    string `query:"status"`
	DateFrom  string `query:"dateFrom"`
	DateTo    string `query:"dateTo"`
}

// ExportHistoryRequest: filter yang sama dengan riwayat, dikirim lewat body.
type ExportHistoryRequest struct {
	SchoolID  string `json:"schoolId"`
	GroupID   string `json:"groupId"`
	StudentID string `json:"studentId"`
	Subject   string `json:"subject"`
	Status    string `json:"status"`
	DateFrom  string `json:"dateFrom"`
	DateTo    string `json:"dateTo"`
}
