package seeds

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	attendanceModel "schoolku_backend/internals/features/attendance/attendance/model"
	schedModel "schoolku_backend/internals/features/attendance/schedule/model"
	schoolModel "schoolku_backend/internals/features/schools/school/model"
	studentModel "schoolku_backend/internals/features/schools/student/model"
	groupModel "schoolku_backend/internals/features/schools/student_group/model"
	teacherModel "schoolku_backend/internals/features/schools/teacher/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

func hashOrSkip(plain string) (string, bool) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Gagal hash password: %v", err)
		return "", false
	}
	return string(h), true
}

func SeedAdminUser(db *gorm.DB) *userModel.UserModel {
	var existing userModel.UserModel
	if err := db.Where("user_name = ?", "admin").First(&existing).Error; err == nil {
		log.Println("ℹ️ User 'admin' sudah ada, dilewati.")
		return &existing
	}

	hashed, ok := hashOrSkip("admin123")
	if !ok {
		return nil
	}
	admin := userModel.UserModel{
		UserName:      "admin",
		UserRoles:     []string{constants.RoleAdmin},
		Password:      hashed,
		PlainPassword: "admin123",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Gagal insert admin: %v", err)
		return nil
	}
	log.Println("✅ Berhasil insert user 'admin'")
	return &admin
}

func SeedSchools(db *gorm.DB) []schoolModel.SchoolModel {
	addr1, addr2 := "12 Rue de la Paix, Paris", "5 Avenue Jean Jaurès, Lyon"
	wanted := []schoolModel.SchoolModel{
		{SchoolName: "École Al Amanah", SchoolAddress: &addr1},
		{SchoolName: "École Avenir", SchoolAddress: &addr2},
	}

	out := make([]schoolModel.SchoolModel, 0, len(wanted))
	for _, w := range wanted {
		var existing schoolModel.SchoolModel
		if err := db.Where("school_name = ?", w.SchoolName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Sekolah '%s' sudah ada, dilewati.", w.SchoolName)
			out = append(out, existing)
			continue
		}
		if err := db.Create(&w).Error; err != nil {
			log.Printf("❌ Gagal insert sekolah '%s': %v", w.SchoolName, err)
			continue
		}
		log.Printf("✅ Berhasil insert sekolah '%s'", w.SchoolName)
		out = append(out, w)
	}
	return out
}

func SeedTeachers(db *gorm.DB, schools []schoolModel.SchoolModel) []teacherModel.TeacherModel {
	if len(schools) == 0 {
		return nil
	}

	type seed struct {
		first, last, username, password string
		school                          int
	}
	wanted := []seed{
		{"Karim", "Bensaïd", "karim.bensaid", "teacher123", 0},
		{"Sofia", "Martin", "sofia.martin", "teacher123", 0},
		{"Nadia", "Lemoine", "nadia.lemoine", "teacher123", 1},
	}

	out := make([]teacherModel.TeacherModel, 0, len(wanted))
	for _, w := range wanted {
		if w.school >= len(schools) {
			continue
		}

		var user userModel.UserModel
		err := db.Where("user_name = ?", w.username).First(&user).Error
		if err != nil {
			hashed, ok := hashOrSkip(w.password)
			if !ok {
				continue
			}
			user = userModel.UserModel{
				UserName:      w.username,
				UserRoles:     []string{constants.RoleTeacher},
				Password:      hashed,
				PlainPassword: w.password,
			}
			if err := db.Create(&user).Error; err != nil {
				log.Printf("❌ Gagal insert user teacher '%s': %v", w.username, err)
				continue
			}
		}

		var existing teacherModel.TeacherModel
		if err := db.Where("teacher_user_id = ?", user.UserID).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Teacher '%s %s' sudah ada, dilewati.", w.first, w.last)
			out = append(out, existing)
			continue
		}

		teacher := teacherModel.TeacherModel{
			TeacherFirstName: w.first,
			TeacherLastName:  w.last,
			TeacherSchoolID:  schools[w.school].SchoolID,
			TeacherUserID:    user.UserID,
		}
		if err := db.Create(&teacher).Error; err != nil {
			log.Printf("❌ Gagal insert teacher '%s %s': %v", w.first, w.last, err)
			continue
		}
		log.Printf("✅ Berhasil insert teacher '%s %s'", w.first, w.last)
		out = append(out, teacher)
	}
	return out
}

func SeedStudentGroups(db *gorm.DB, schools []schoolModel.SchoolModel, teachers []teacherModel.TeacherModel) []groupModel.StudentGroupModel {
	if len(schools) == 0 {
		return nil
	}

	type seed struct {
		name            string
		school, teacher int // teacher -1 = tanpa teacher
	}
	wanted := []seed{
		{"Groupe A", 0, 0},
		{"Groupe B", 0, 1},
		{"Groupe Débutants", 1, 2},
	}

	out := make([]groupModel.StudentGroupModel, 0, len(wanted))
	for _, w := range wanted {
		if w.school >= len(schools) {
			continue
		}
		schoolID := schools[w.school].SchoolID

		var existing groupModel.StudentGroupModel
		if err := db.Where("student_group_school_id = ? AND student_group_name = ?", schoolID, w.name).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Group '%s' sudah ada, dilewati.", w.name)
			out = append(out, existing)
			continue
		}

		group := groupModel.StudentGroupModel{
			StudentGroupName:     w.name,
			StudentGroupSchoolID: schoolID,
		}
		if w.teacher >= 0 && w.teacher < len(teachers) {
			id := teachers[w.teacher].TeacherID
			group.StudentGroupTeacherID = &id
		}
		if err := db.Create(&group).Error; err != nil {
			log.Printf("❌ Gagal insert group '%s': %v", w.name, err)
			continue
		}
		log.Printf("✅ Berhasil insert group '%s'", w.name)
		out = append(out, group)
	}
	return out
}

func SeedStudents(db *gorm.DB, groups []groupModel.StudentGroupModel) []studentModel.StudentModel {
	if len(groups) == 0 {
		return nil
	}

	type seed struct {
		first, last, niveau string
		group               int
	}
	wanted := []seed{
		{"Adam", "Haddad", "CP", 0},
		{"Lina", "Cherif", "CP", 0},
		{"Yasmine", "Diallo", "CE1", 0},
		{"Omar", "Toumi", "CE2", 1},
		{"Ines", "Bakker", "CE2", 1},
		{"Rayan", "Mansour", "CM1", 2},
	}

	out := make([]studentModel.StudentModel, 0, len(wanted))
	for _, w := range wanted {
		if w.group >= len(groups) {
			continue
		}
		group := groups[w.group]

		var existing studentModel.StudentModel
		if err := db.Where("student_group_id = ? AND student_first_name = ? AND student_last_name = ?",
			group.StudentGroupID, w.first, w.last).First(&existing).Error; err == nil {
			out = append(out, existing)
			continue
		}

		student := studentModel.StudentModel{
			StudentFirstName:      w.first,
			StudentLastName:       w.last,
			StudentNiveauScolaire: w.niveau,
		}
		student.AssignGroup(&group)
		if err := db.Create(&student).Error; err != nil {
			log.Printf("❌ Gagal insert siswa '%s %s': %v", w.first, w.last, err)
			continue
		}
		log.Printf("✅ Berhasil insert siswa '%s %s'", w.first, w.last)
		out = append(out, student)
	}
	return out
}

// SeedSampleAttendance: satu slot Math hari Senin + tanda hadir untuk group pertama.
func SeedSampleAttendance(db *gorm.DB, groups []groupModel.StudentGroupModel, students []studentModel.StudentModel) {
	if len(groups) == 0 || len(students) == 0 {
		return
	}
	group := groups[0]

	sched := schedModel.ScheduleModel{
		ScheduleGroupID:   group.StudentGroupID,
		ScheduleSubject:   "Math",
		ScheduleDayOfWeek: "Monday",
		ScheduleStartTime: "09:00",
		ScheduleEndTime:   "10:30",
	}
	var existing schedModel.ScheduleModel
	err := db.Where("schedule_group_id = ? AND schedule_subject = ? AND schedule_day_of_week = ? AND schedule_start_time = ? AND schedule_end_time = ?",
		sched.ScheduleGroupID, sched.ScheduleSubject, sched.ScheduleDayOfWeek,
		sched.ScheduleStartTime, sched.ScheduleEndTime).First(&existing).Error
	if err == nil {
		log.Println("ℹ️ Schedule contoh sudah ada, seeds kehadiran dilewati.")
		return
	}
	if err := db.Create(&sched).Error; err != nil {
		log.Printf("❌ Gagal insert schedule contoh: %v", err)
		return
	}
	log.Println("✅ Berhasil insert schedule contoh (Math, Monday 09:00–10:30)")

	// Senin terakhir sebelum hari ini
	date := time.Now().UTC().Truncate(24 * time.Hour)
	for date.Weekday() != time.Monday {
		date = date.AddDate(0, 0, -1)
	}

	start, end := sched.ScheduleStartTime, sched.ScheduleEndTime
	for i, st := range students {
		if st.StudentGroupID != group.StudentGroupID {
			continue
		}
		status := attendanceModel.StatusPresent
		if i%3 == 2 {
			status = attendanceModel.StatusAbsent
		}
		schedID := sched.ScheduleID
		row := attendanceModel.AttendanceModel{
			AttendanceStudentID:  st.StudentID,
			AttendanceScheduleID: &schedID,
			AttendanceGroupID:    group.StudentGroupID,
			AttendanceDate:       date,
			AttendanceStatus:     status,
			AttendanceStartTime:  &start,
			AttendanceEndTime:    &end,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert kehadiran '%s %s': %v", st.StudentFirstName, st.StudentLastName, err)
		}
	}
	log.Println("✅ Berhasil insert kehadiran contoh")
}
