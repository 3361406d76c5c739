// file: internals/helpers/clock.go
package helper

import (
	"errors"
	"fmt"
	"time"
)

// ParseClock membaca jam "HH:MM" → menit sejak tengah malam.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, errors.New("format jam tidak valid (harus HH:MM)")
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, errors.New("format jam tidak valid (harus HH:MM)")
	}
	return h*60 + m, nil
}

// DurationHours menghitung durasi start→end dalam jam (pecahan).
// Return 0 kalau end <= start atau format salah.
func DurationHours(start, end string) float64 {
	s, err1 := ParseClock(start)
	e, err2 := ParseClock(end)
	if err1 != nil || err2 != nil || e <= s {
		return 0
	}
	return float64(e-s) / 60.0
}

// ParseDateYYYYMMDD membaca tanggal wire-format "2006-01-02".
func ParseDateYYYYMMDD(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errors.New("format tanggal tidak valid (harus YYYY-MM-DD)")
	}
	return t, nil
}

// DayOfWeekName: nama hari Inggris ("Monday" dst), dipakai sebagai kunci Schedule.
func DayOfWeekName(t time.Time) string {
	return t.Weekday().String()
}

// WeekBounds: Senin–Minggu (ISO) yang memuat date.
func WeekBounds(date time.Time) (time.Time, time.Time) {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	start := d.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return start, end
}
