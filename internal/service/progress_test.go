package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/fittracker/internal"
)

func TestBuildProgress(t *testing.T) {
	setup := internal.Setup{InitialWeight: 90, Height: 200, DailyWaterGoal: 2000}
	history := []internal.HistoricalRecord{
		{Date: "2025-03-08", CountdownDay: 1, Weight: 89, Nutrition: internal.Nutrition{Calories: 2000, Protein: 100, Water: 1500}},
		{Date: "2025-03-09", CountdownDay: 2, Weight: 88, Pushups: 10, Nutrition: internal.Nutrition{Calories: 1800, Protein: 120, Water: 2500}},
	}
	today := internal.DailyRecord{
		Date:             "2025-03-10",
		CountdownDay:     3,
		Weight:           ptr(87.0),
		WorkoutCompleted: true,
		Nutrition:        internal.Nutrition{Water: 3000},
	}

	p := BuildProgress(setup, history, today)
	require.Len(t, p.Series, 3)
	assert.True(t, p.Series[2].Today)
	assert.Equal(t, 87.0, *p.LatestWeight)
	assert.Equal(t, -3.0, *p.WeightChange)
	assert.Equal(t, 21.8, *p.BMI) // 87 / 2.0^2 = 21.75
	assert.Equal(t, 100.0, p.WaterGoalPercent)
	assert.Equal(t, internal.Nutrition{Calories: 1900, Protein: 110, Water: 2000}, p.AverageNutrition)
	assert.Equal(t, 2, p.DaysArchived)
	assert.True(t, p.WorkoutCompletedToday)
}

func TestBuildProgress_SkipsTodayWithoutActivity(t *testing.T) {
	setup := internal.Setup{InitialWeight: 70, Height: 175, DailyWaterGoal: 2000}
	today := internal.DailyRecord{Date: "2025-03-10", CountdownDay: 1, Nutrition: internal.Nutrition{Water: 500}}

	p := BuildProgress(setup, nil, today)
	assert.Empty(t, p.Series)
	assert.Nil(t, p.LatestWeight)
	assert.Nil(t, p.BMI)
	assert.Equal(t, 25.0, p.WaterGoalPercent)
	assert.Equal(t, internal.Nutrition{}, p.AverageNutrition)
}

func TestTrackerProgressAndBriefing(t *testing.T) {
	ctx := context.Background()
	tr, _, clk := newTestTracker(t)
	tr.CompleteSetup(ctx, setupWith(10))

	b := tr.MorningBriefing(ctx)
	assert.Equal(t, 1, b.CountdownDay)
	assert.Equal(t, 10, b.TotalDays)
	assert.False(t, b.HasLoggedWeight)
	assert.True(t, b.SetupComplete)
	assert.Contains(t, quotes, b.Quote)

	tr.ApplyDailyUpdate(ctx, internal.DailyUpdate{Weight: ptr(69.0)})
	clk.AdvanceDays(1)
	tr.ApplyDailyUpdate(ctx, internal.DailyUpdate{Situps: ptr(40)})

	b = tr.MorningBriefing(ctx)
	assert.Equal(t, 2, b.CountdownDay)
	assert.False(t, b.HasLoggedWeight)

	p := tr.Progress(ctx)
	require.Len(t, p.Series, 2)
	assert.Equal(t, "2025-03-10", p.Series[0].Date)
	assert.Equal(t, 40, p.Series[1].Situps)
	assert.Equal(t, -1.0, *p.WeightChange)
}

// steppingClock returns each of times once, then repeats the last.
type steppingClock struct {
	times []time.Time
}

func (c *steppingClock) Now() time.Time {
	now := c.times[0]
	if len(c.times) > 1 {
		c.times = c.times[1:]
	}
	return now
}

func TestProgressUsesSnapshotDate(t *testing.T) {
	ctx := context.Background()
	tr, repo, _ := newTestTracker(t)
	tr.CompleteSetup(ctx, setupWith(10))
	tr.ApplyDailyUpdate(ctx, internal.DailyUpdate{Weight: ptr(80.0)})

	// Midnight passes right after the snapshot is taken.
	clk := &steppingClock{times: []time.Time{
		time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC),
		time.Date(2025, 3, 11, 0, 0, 1, 0, time.UTC),
	}}
	late := NewTracker(repo, clk, time.UTC, internal.NopLogger())

	p := late.Progress(ctx)
	require.Len(t, p.Series, 1)
	assert.Equal(t, "2025-03-10", p.Series[0].Date)
	assert.True(t, p.Series[0].Today)
	assert.Equal(t, 80.0, *p.LatestWeight)
}
