package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	min, err := ParseClock("08:30")
	assert.NoError(t, err)
	assert.Equal(t, 8*60+30, min)

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("abc")
	assert.Error(t, err)
}

func TestDurationHours(t *testing.T) {
	assert.Equal(t, 1.0, DurationHours("08:00", "09:00"))
	assert.Equal(t, 1.5, DurationHours("08:00", "09:30"))
	assert.Equal(t, 0.0, DurationHours("09:00", "08:00"))
	assert.Equal(t, 0.0, DurationHours("09:00", "09:00"))
}

func TestWeekBounds(t *testing.T) {
	// 2024-03-06 = Rabu
	d := time.Date(2024, 3, 6, 15, 4, 5, 0, time.UTC)
	start, end := WeekBounds(d)
	assert.Equal(t, "2024-03-04", start.Format("2006-01-02")) // Senin
	assert.Equal(t, "2024-03-10", end.Format("2006-01-02"))   // Minggu

	// Senin tetap di minggunya sendiri
	mon := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	start, _ = WeekBounds(mon)
	assert.Equal(t, "2024-03-04", start.Format("2006-01-02"))

	// Minggu masuk ke minggu yang dimulai Senin sebelumnya
	sun := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	start, end = WeekBounds(sun)
	assert.Equal(t, "2024-03-04", start.Format("2006-01-02"))
	assert.Equal(t, "2024-03-10", end.Format("2006-01-02"))
}

func TestDayOfWeekName(t *testing.T) {
	d := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Monday", DayOfWeekName(d))
}
