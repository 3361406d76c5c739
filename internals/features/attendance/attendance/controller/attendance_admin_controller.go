package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/attendance/attendance/dto"
	"schoolku_backend/internals/features/attendance/attendance/model"
	attendanceService "schoolku_backend/internals/features/attendance/attendance/service"
	schedModel "schoolku_backend/internals/features/attendance/schedule/model"
	schedService "schoolku_backend/internals/features/attendance/schedule/service"
	studentModel "schoolku_backend/internals/features/schools/student/model"
	groupModel "schoolku_backend/internals/features/schools/student_group/model"
	helper "schoolku_backend/internals/helpers"
)

type AttendanceAdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceAdminController(db *gorm.DB) *AttendanceAdminController {
	return &AttendanceAdminController{DB: db, Validate: validator.New()}
}

// POST /api/a/save-attendance
// Resolve schedule (find-or-create) lalu upsert kehadiran per siswa — satu tx.
func (ac *AttendanceAdminController) SaveAttendance(c *fiber.Ctx) error {
	var req dto.SaveAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	groupID, err := req.ParsedGroupID()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "groupId tidak valid")
	}
	date, err := req.ParsedDate()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var group groupModel.StudentGroupModel
	if err := ac.DB.Where("student_group_id = ?", groupID).Take(&group).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Group tidak ditemukan")
	}

	var result *attendanceService.UpsertResult
	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		resolver := schedService.NewResolver(schedService.NewGormScheduleStore(tx))
		sched, err := resolver.Resolve(schedService.ResolveInput{
			GroupID:   groupID,
			Subject:   req.Subject,
			Date:      date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		})
		if err != nil {
			return err
		}

		engine := attendanceService.NewEngine(attendanceService.NewGormAttendanceStore(tx))
		result, err = engine.Upsert(attendanceService.UpsertInput{
			GroupID:         groupID,
			Schedule:        sched,
			Date:            date,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			Marks:           req.Marks,
			AllowedStatuses: model.AllStatuses,
		})
		return err
	})
	if err != nil {
		return mapSaveError(c, err)
	}

	log.Printf("[SUCCESS] Admin menyimpan kehadiran: group=%s date=%s count=%d\n", groupID, req.Date, result.Count)
	return helper.Success(c, fmt.Sprintf("Kehadiran tersimpan untuk %d siswa", result.Count), fiber.Map{
		"count":       result.Count,
		"schedule_id": result.ScheduleID,
		"errors":      result.Errors,
	})
}

func mapSaveError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, schedService.ErrInvalidSubject),
		errors.Is(err, schedService.ErrInvalidTimeWindow):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, attendanceService.ErrInvalidTimeWindow),
		errors.Is(err, attendanceService.ErrTimeNotAllowed),
		errors.Is(err, attendanceService.ErrSessionTooLong),
		errors.Is(err, attendanceService.ErrWeeklyCapExceeded):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Println("[ERROR] Simpan kehadiran gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
	}
}

// GET /api/a/attendance-data/:scheduleId/:date
// Roster group + tanda yang sudah ada, untuk layar penandaan.
func (ac *AttendanceAdminController) GetAttendanceData(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "scheduleId tidak valid")
	}
	date, err := helper.ParseDateYYYYMMDD(c.Params("date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var sched schedModel.ScheduleModel
	if err := ac.DB.Where("schedule_id = ?", scheduleID).Take(&sched).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Schedule tidak ditemukan")
	}

	var students []studentModel.StudentModel
	if err := ac.DB.
		Where("student_group_id = ?", sched.ScheduleGroupID).
		Order("student_last_name ASC, student_first_name ASC").
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil siswa group")
	}

	var rows []model.AttendanceModel
	if err := ac.DB.
		Where("attendance_group_id = ?", sched.ScheduleGroupID).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		Where("attendance_start_time = ?", sched.ScheduleStartTime).
		Where("attendance_end_time = ?", sched.ScheduleEndTime).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}

	marks := make(map[string]string, len(rows))
	for _, r := range rows {
		marks[r.AttendanceStudentID.String()] = r.AttendanceStatus
	}

	return helper.Success(c, "Data penandaan kehadiran", fiber.Map{
		"schedule":   sched,
		"date":       date.Format("2006-01-02"),
		"students":   students,
		"attendance": marks,
	})
}

// historyRow: satu baris hasil join untuk riwayat/export.
type historyRow struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id" json:"attendance_id"`
	Date         time.Time `gorm:"column:attendance_date" json:"date"`
	Status       string    `gorm:"column:attendance_status" json:"status"`
	StartTime    *string   `gorm:"column:attendance_start_time" json:"start_time,omitempty"`
	EndTime      *string   `gorm:"column:attendance_end_time" json:"end_time,omitempty"`
	StudentID    uuid.UUID `gorm:"column:student_id" json:"student_id"`
	FirstName    string    `gorm:"column:student_first_name" json:"student_first_name"`
	LastName     string    `gorm:"column:student_last_name" json:"student_last_name"`
	GroupName    string    `gorm:"column:student_group_name" json:"group_name"`
	SchoolName   string    `gorm:"column:school_name" json:"school_name"`
	Subject      *string   `gorm:"column:schedule_subject" json:"subject,omitempty"`
}

func (ac *AttendanceAdminController) historyQuery(f dto.HistoryFilter) (*gorm.DB, error) {
	q := ac.DB.Table("attendances").
		Select(`attendances.attendance_id, attendances.attendance_date, attendances.attendance_status,
			attendances.attendance_start_time, attendances.attendance_end_time,
			students.student_id, students.student_first_name, students.student_last_name,
			student_groups.student_group_name, schools.school_name, schedules.schedule_subject`).
		Joins("JOIN students ON students.student_id = attendances.attendance_student_id").
		Joins("JOIN student_groups ON student_groups.student_group_id = attendances.attendance_group_id").
		Joins("JOIN schools ON schools.school_id = student_groups.student_group_school_id").
		Joins("LEFT JOIN schedules ON schedules.schedule_id = attendances.attendance_schedule_id")

	if f.SchoolID != "" {
		id, err := uuid.Parse(f.SchoolID)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "schoolId tidak valid")
		}
		q = q.Where("student_groups.student_group_school_id = ?", id)
	}
	if f.GroupID != "" {
		id, err := uuid.Parse(f.GroupID)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "groupId tidak valid")
		}
		q = q.Where("attendances.attendance_group_id = ?", id)
	}
	if f.StudentID != "" {
		id, err := uuid.Parse(f.StudentID)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "studentId tidak valid")
		}
		q = q.Where("attendances.attendance_student_id = ?", id)
	}
	if f.Subject != "" {
		q = q.Where("schedules.schedule_subject = ?", f.Subject)
	}
	if f.Status != "" {
		if !model.IsValidStatus(f.Status, model.AllStatuses) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "status tidak dikenal")
		}
		q = q.Where("attendances.attendance_status = ?", f.Status)
	}
	if f.DateFrom != "" {
		from, err := helper.ParseDateYYYYMMDD(f.DateFrom)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "dateFrom tidak valid")
		}
		q = q.Where("attendances.attendance_date >= ?", from.Format("2006-01-02"))
	}
	if f.DateTo != "" {
		to, err := helper.ParseDateYYYYMMDD(f.DateTo)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "dateTo tidak valid")
		}
		q = q.Where("attendances.attendance_date <= ?", to.Format("2006-01-02"))
	}
	return q, nil
}

// GET /api/a/attendance-history
func (ac *AttendanceAdminController) GetAttendanceHistory(c *fiber.Ctx) error {
	var filter dto.HistoryFilter
	if err := c.QueryParser(&filter); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	q, err := ac.historyQuery(filter)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] Hitung riwayat gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat kehadiran")
	}

	var rows []historyRow
	if err := q.
		Order("attendances.attendance_date DESC, attendances.attendance_start_time DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Ambil riwayat gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat kehadiran")
	}

	return helper.Success(c, "Riwayat kehadiran", fiber.Map{
		"history":    rows,
		"pagination": helper.BuildPagination(total, paging, len(rows)),
	})
}

// GET /api/a/attendance-stats
// Hitungan per status + deret per tanggal (30 tanggal terakhir yang punya data).
func (ac *AttendanceAdminController) GetAttendanceStats(c *fiber.Ctx) error {
	var filter dto.HistoryFilter
	if err := c.QueryParser(&filter); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	base, err := ac.historyQuery(filter)
	if err != nil {
		return err
	}

	type statusCount struct {
		Status string `gorm:"column:attendance_status" json:"status"`
		Count  int64  `gorm:"column:n" json:"count"`
	}
	var byStatus []statusCount
	if err := base.Session(&gorm.Session{}).
		Select("attendances.attendance_status, COUNT(*) AS n").
		Group("attendances.attendance_status").
		Scan(&byStatus).Error; err != nil {
		log.Println("[ERROR] Stats per status gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}

	totals := fiber.Map{
		model.StatusPresent: int64(0),
		model.StatusAbsent:  int64(0),
		model.StatusLate:    int64(0),
		model.StatusExcused: int64(0),
	}
	var total int64
	for _, sc := range byStatus {
		totals[sc.Status] = sc.Count
		total += sc.Count
	}

	type dateCount struct {
		Date    time.Time `gorm:"column:attendance_date" json:"date"`
		Present int64     `gorm:"column:present" json:"present"`
		Absent  int64     `gorm:"column:absent" json:"absent"`
		Late    int64     `gorm:"column:late" json:"late"`
		Excused int64     `gorm:"column:excused" json:"excused"`
	}
	var series []dateCount
	if err := base.Session(&gorm.Session{}).
		Select(`attendances.attendance_date,
			COUNT(*) FILTER (WHERE attendances.attendance_status = 'present') AS present,
			COUNT(*) FILTER (WHERE attendances.attendance_status = 'absent')  AS absent,
			COUNT(*) FILTER (WHERE attendances.attendance_status = 'late')    AS late,
			COUNT(*) FILTER (WHERE attendances.attendance_status = 'excused') AS excused`).
		Group("attendances.attendance_date").
		Order("attendances.attendance_date DESC").
		Limit(30).
		Scan(&series).Error; err != nil {
		log.Println("[ERROR] Stats per tanggal gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}

	return helper.Success(c, "Statistik kehadiran", fiber.Map{
		"total":     total,
		"by_status": totals,
		"by_date":   series,
	})
}

// GET /api/a/available-dates — tanggal distinct yang punya catatan, terbaru dulu.
func (ac *AttendanceAdminController) GetAvailableDates(c *fiber.Ctx) error {
	var dates []time.Time
	if err := ac.DB.Model(&model.AttendanceModel{}).
		Distinct("attendance_date").
		Order("attendance_date DESC").
		Pluck("attendance_date", &dates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tanggal")
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	return helper.Success(c, "Daftar tanggal kehadiran", fiber.Map{"dates": out})
}

// GET /api/a/available-subjects — mapel distinct dari schedule yang pernah dipakai.
func (ac *AttendanceAdminController) GetAvailableSubjects(c *fiber.Ctx) error {
	var subjects []string
	if err := ac.DB.Model(&schedModel.ScheduleModel{}).
		Distinct("schedule_subject").
		Order("schedule_subject ASC").
		Pluck("schedule_subject", &subjects).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar mapel")
	}
	return helper.Success(c, "Daftar mapel", fiber.Map{"subjects": subjects})
}

// GET /api/a/available-students — siswa distinct yang pernah punya catatan kehadiran.
func (ac *AttendanceAdminController) GetAvailableStudents(c *fiber.Ctx) error {
	type studentOption struct {
		StudentID uuid.UUID `gorm:"column:student_id" json:"student_id"`
		FirstName string    `gorm:"column:student_first_name" json:"student_first_name"`
		LastName  string    `gorm:"column:student_last_name" json:"student_last_name"`
	}
	var students []studentOption
	if err := ac.DB.Table("attendances").
		Select("DISTINCT students.student_id, students.student_first_name, students.student_last_name").
		Joins("JOIN students ON students.student_id = attendances.attendance_student_id").
		Order("students.student_last_name ASC, students.student_first_name ASC").
		Scan(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar siswa")
	}
	return helper.Success(c, "Daftar siswa", fiber.Map{"students": students})
}

// POST /api/a/export-history
// Baris riwayat terfilter, bentuk siap spreadsheet (rendering di sisi klien).
func (ac *AttendanceAdminController) ExportHistory(c *fiber.Ctx) error {
	var req dto.ExportHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	q, err := ac.historyQuery(dto.HistoryFilter{
		SchoolID:  req.SchoolID,
		GroupID:   req.GroupID,
		StudentID: req.StudentID,
		Subject:   req.Subject,
		Status:    req.Status,
		DateFrom:  req.DateFrom,
		DateTo:    req.DateTo,
	})
	if err != nil {
		return err
	}

	var rows []historyRow
	if err := q.
		Order("attendances.attendance_date ASC, attendances.attendance_start_time ASC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Export riwayat gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengekspor riwayat")
	}

	export := make([][]string, 0, len(rows))
	for _, r := range rows {
		subject, start, end := "", "", ""
		if r.Subject != nil {
			subject = *r.Subject
		}
		if r.StartTime != nil {
			start = *r.StartTime
		}
		if r.EndTime != nil {
			end = *r.EndTime
		}
		export = append(export, []string{
			r.Date.Format("2006-01-02"),
			r.SchoolName,
			r.GroupName,
			r.LastName + " " + r.FirstName,
			subject,
			start,
			end,
			r.Status,
		})
	}

	fileName := fmt.Sprintf("attendance-history-%s.csv", time.Now().Format("20060102-150405"))
	return helper.Success(c, "Data export riwayat", fiber.Map{
		"file_name": fileName,
		"header":    []string{"Date", "School", "Group", "Student", "Subject", "Start", "End", "Status"},
		"rows":      export,
		"total":     len(export),
	})
}
