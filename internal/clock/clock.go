// Package clock supplies the current calendar date to the tracker.
package clock

import (
	"sync"
	"time"
)

// DateLayout is the ISO calendar-date format every stored date uses.
const DateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Manual is a clock that only moves when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// AdvanceDays moves the clock forward by n calendar days.
func (m *Manual) AdvanceDays(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.AddDate(0, 0, n)
}

// Today formats the clock's current instant as a calendar date in loc.
func Today(c Clock, loc *time.Location) string {
	return c.Now().In(loc).Format(DateLayout)
}

// WeekdayName returns the English weekday name of a calendar date string.
// The date is interpreted on its own, so the result does not depend on any
// time zone.
func WeekdayName(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}
