package service

import (
	"context"
	"math"

	"github.com/yourname/fittracker/internal"
)

// ProgressPoint is one day on the analysis charts.
type ProgressPoint struct {
	Date         string             `json:"date"`
	CountdownDay int                `json:"countdownDay"`
	Weight       *float64           `json:"weight,omitempty"`
	Pushups      int                `json:"pushups"`
	Situps       int                `json:"situps"`
	Nutrition    internal.Nutrition `json:"nutrition"`
	Today        bool               `json:"today"`
}

type Progress struct {
	Series                []ProgressPoint    `json:"series"`
	InitialWeight         float64            `json:"initialWeight"`
	LatestWeight          *float64           `json:"latestWeight,omitempty"`
	WeightChange          *float64           `json:"weightChange,omitempty"`
	BMI                   *float64           `json:"bmi,omitempty"`
	WaterGoalPercent      float64            `json:"waterGoalPercent"`
	AverageNutrition      internal.Nutrition `json:"averageNutrition"`
	DaysArchived          int                `json:"daysArchived"`
	WorkoutCompletedToday bool               `json:"workoutCompletedToday"`
}

// Progress builds chart data from history plus today.
func (t *Tracker) Progress(ctx context.Context) Progress {
	st, date := t.snapshot(ctx)
	var today internal.DailyRecord
	for _, d := range st.DailyData {
		if d.Date == date {
			today = d
		}
	}
	return BuildProgress(st.Setup, st.HistoricalData, today)
}

// BuildProgress only charts days where weight, pushups or situps were
// logged.
func BuildProgress(setup internal.Setup, history []internal.HistoricalRecord, today internal.DailyRecord) Progress {
	p := Progress{
		Series:                []ProgressPoint{},
		InitialWeight:         setup.InitialWeight,
		DaysArchived:          len(history),
		WorkoutCompletedToday: today.WorkoutCompleted,
	}

	var latest *float64
	var sum internal.Nutrition
	for _, h := range history {
		w := h.Weight
		point := ProgressPoint{
			Date:         h.Date,
			CountdownDay: h.CountdownDay,
			Weight:       &w,
			Pushups:      h.Pushups,
			Situps:       h.Situps,
			Nutrition:    h.Nutrition,
		}
		if w != 0 || h.Pushups != 0 || h.Situps != 0 {
			p.Series = append(p.Series, point)
		}
		if w != 0 {
			latest = &w
		}
		sum.Calories += h.Nutrition.Calories
		sum.Protein += h.Nutrition.Protein
		sum.Water += h.Nutrition.Water
	}
	if n := float64(len(history)); n > 0 {
		p.AverageNutrition = internal.Nutrition{
			Calories: round1(sum.Calories / n),
			Protein:  round1(sum.Protein / n),
			Water:    round1(sum.Water / n),
		}
	}

	if today.HasActivity() {
		point := ProgressPoint{
			Date:         today.Date,
			CountdownDay: today.CountdownDay,
			Nutrition:    today.Nutrition,
			Today:        true,
		}
		if today.Weight != nil {
			w := *today.Weight
			point.Weight = &w
			if w != 0 {
				latest = &w
			}
		}
		if today.Pushups != nil {
			point.Pushups = *today.Pushups
		}
		if today.Situps != nil {
			point.Situps = *today.Situps
		}
		p.Series = append(p.Series, point)
	}

	if latest != nil {
		p.LatestWeight = latest
		change := round1(*latest - setup.InitialWeight)
		p.WeightChange = &change
		if setup.Height > 0 {
			m := setup.Height / 100
			bmi := round1(*latest / (m * m))
			p.BMI = &bmi
		}
	}
	if setup.DailyWaterGoal > 0 {
		p.WaterGoalPercent = math.Min(today.Nutrition.Water/setup.DailyWaterGoal*100, 100)
	}
	return p
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
