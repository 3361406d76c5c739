package seeds

import (
	"log"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data demo: admin, dua sekolah, teacher + user login,
// group, siswa, plus satu schedule & kehadiran contoh. Idempoten — data
// yang sudah ada dilewati.
func RunAllSeeds(db *gorm.DB) {
	log.Println("🌱 Menjalankan seeds demo...")

	SeedAdminUser(db)
	schools := SeedSchools(db)
	teachers := SeedTeachers(db, schools)
	groups := SeedStudentGroups(db, schools, teachers)
	students := SeedStudents(db, groups)
	SeedSampleAttendance(db, groups, students)

	log.Println("🌱 Seeds demo selesai.")
}
