// Package schedule derives activity due dates and progress from calendar time.
//
// All arithmetic stays in the start instant's location so persisted timestamps
// and derived dates share one calendar.
package schedule

import (
	"errors"
	"time"

	"seguimiento_actividades/internal/domain/entities"
)

var ErrNegativeDays = errors.New("negative business days")

// CloseDate advances start by diasHabiles business days, skipping Saturdays
// and Sundays. The time-of-day is preserved; zero days returns start unchanged.
func CloseDate(start time.Time, diasHabiles int) (time.Time, error) {
	if diasHabiles < 0 {
		return time.Time{}, ErrNegativeDays
	}

	d := start
	for counted := 0; counted < diasHabiles; {
		d = d.AddDate(0, 0, 1)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			counted++
		}
	}
	return d, nil
}

// Progress returns the elapsed fraction of the activity window, clamped to [0,1].
//
// Without a close date there is no window, so progress is 0. Once now reaches
// the close date progress pins to 1; that guard also covers the degenerate
// zero-length window, so no division by zero is possible.
func Progress(createdAt time.Time, closesAt *time.Time, now time.Time) float64 {
	if closesAt == nil {
		return 0
	}
	if !now.Before(*closesAt) {
		return 1
	}
	total := closesAt.Sub(createdAt)
	if total <= 0 {
		return 1
	}
	frac := float64(now.Sub(createdAt)) / float64(total)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// Overdue reports whether an open activity is past its close date. Closed
// activities are never overdue, whatever their dates say.
func Overdue(closesAt *time.Time, estado entities.ActivityStatus, now time.Time) bool {
	if estado == entities.ActivityStatusCerrado || closesAt == nil {
		return false
	}
	return closesAt.Before(now)
}
