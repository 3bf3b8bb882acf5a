package service

import "github.com/yourname/fittracker/internal"

// NextCycleDay returns the cycle day that follows prev. With no previous
// record the cycle starts at 1. Cycle lengths below 1 behave like 1.
func NextCycleDay(prev *internal.DailyRecord, cycleLength int) int {
	if cycleLength < 1 {
		cycleLength = 1
	}
	last := 0
	if prev != nil {
		last = prev.CountdownDay
	}
	next := last + 1
	if next > cycleLength {
		next = 1
	}
	return next
}
