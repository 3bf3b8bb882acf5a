package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/fittracker/internal"
)

func ptr[T any](v T) *T { return &v }

func TestBoundaryCrossed(t *testing.T) {
	st := &internal.State{LastReset: "2025-03-10"}
	assert.False(t, BoundaryCrossed(st, "2025-03-10"))
	assert.True(t, BoundaryCrossed(st, "2025-03-11"))

	st.LastReset = ""
	assert.False(t, BoundaryCrossed(st, "2025-03-11"))
}

func TestArchive(t *testing.T) {
	_, ok := Archive(internal.DailyRecord{Date: "2025-03-10", CountdownDay: 3, Pushups: ptr(10)})
	assert.False(t, ok)

	rec := internal.DailyRecord{
		Date:             "2025-03-10",
		CountdownDay:     3,
		Weight:           ptr(79.4),
		Situps:           ptr(15),
		WorkoutCompleted: true,
		Nutrition:        internal.Nutrition{Calories: 2100, Protein: 140, Water: 1800},
	}
	h, ok := Archive(rec)
	require.True(t, ok)
	assert.Equal(t, internal.HistoricalRecord{
		Date:         "2025-03-10",
		CountdownDay: 3,
		Weight:       79.4,
		Pushups:      0,
		Situps:       15,
		Nutrition:    internal.Nutrition{Calories: 2100, Protein: 140, Water: 1800},
	}, h)
}

func TestRollover_NoopWhenCurrent(t *testing.T) {
	st := &internal.State{
		Setup:     internal.Setup{CountdownDays: 10},
		DailyData: []internal.DailyRecord{{Date: "2025-03-10", CountdownDay: 4, Weight: ptr(80.0)}},
		LastReset: "2025-03-10",
	}
	res := Rollover(st, "2025-03-10")
	assert.False(t, res.Rolled)
	assert.Len(t, st.DailyData, 1)
	assert.Empty(t, st.HistoricalData)
}

func TestRollover_ArchivesLastRecordOnly(t *testing.T) {
	st := &internal.State{
		Setup: internal.Setup{CountdownDays: 10},
		DailyData: []internal.DailyRecord{
			{Date: "2025-03-08", CountdownDay: 2, Weight: ptr(81.0)},
			{Date: "2025-03-09", CountdownDay: 3, Weight: ptr(80.5)},
		},
		HistoricalData: []internal.HistoricalRecord{{Date: "2025-03-07", CountdownDay: 1, Weight: 82}},
		LastReset:      "2025-03-09",
	}
	res := Rollover(st, "2025-03-10")
	require.True(t, res.Rolled)
	require.NotNil(t, res.Archived)
	assert.Equal(t, 4, res.CycleDay)

	require.Len(t, st.HistoricalData, 2)
	assert.Equal(t, "2025-03-07", st.HistoricalData[0].Date)
	assert.Equal(t, "2025-03-09", st.HistoricalData[1].Date)
	assert.Equal(t, []internal.DailyRecord{{Date: "2025-03-10", CountdownDay: 4}}, st.DailyData)
	assert.Equal(t, "2025-03-10", st.LastReset)
}

func TestRollover_DropsDayWithoutWeight(t *testing.T) {
	st := &internal.State{
		Setup:     internal.Setup{CountdownDays: 3},
		DailyData: []internal.DailyRecord{{Date: "2025-03-09", CountdownDay: 3, Pushups: ptr(30)}},
		LastReset: "2025-03-09",
	}
	res := Rollover(st, "2025-03-10")
	assert.True(t, res.Rolled)
	assert.Nil(t, res.Archived)
	assert.Equal(t, "2025-03-09", res.Dropped)
	assert.Equal(t, 1, res.CycleDay)
	assert.Empty(t, st.HistoricalData)
}

func TestRollover_EmptyDailyData(t *testing.T) {
	st := &internal.State{Setup: internal.Setup{CountdownDays: 5}, LastReset: "2025-03-09"}
	res := Rollover(st, "2025-03-10")
	assert.True(t, res.Rolled)
	assert.Equal(t, 1, res.CycleDay)
	assert.Equal(t, "", res.Dropped)
}
