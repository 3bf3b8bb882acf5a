package service

import "github.com/yourname/fittracker/internal"

// BoundaryCrossed reports whether today differs from the stored last-reset
// date. Dates are compared as calendar strings, so any number of checks on
// the same day agree. A missing last-reset date counts as today.
func BoundaryCrossed(state *internal.State, today string) bool {
	if state.LastReset == "" {
		return false
	}
	return state.LastReset != today
}
