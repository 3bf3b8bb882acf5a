package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayUsesLocation(t *testing.T) {
	// 23:30 UTC is already the next day in Tokyo.
	c := NewManual(time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC))
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, "2025-03-09", Today(c, time.UTC))
	assert.Equal(t, "2025-03-10", Today(c, tokyo))
}

func TestManualAdvanceDays(t *testing.T) {
	c := NewManual(time.Date(2025, 12, 31, 8, 0, 0, 0, time.UTC))
	c.AdvanceDays(1)
	assert.Equal(t, "2026-01-01", Today(c, time.UTC))
}

func TestWeekdayName(t *testing.T) {
	name, err := WeekdayName("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "Monday", name)

	_, err = WeekdayName("not-a-date")
	assert.Error(t, err)
}
