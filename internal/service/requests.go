package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/yourname/fittracker/internal"
)

var validate = validator.New()

type ExerciseRequest struct {
	ID   string `json:"id" validate:"omitempty,max=64"`
	Name string `json:"name" validate:"required,max=100"`
	Sets int    `json:"sets" validate:"gte=0,lte=100"`
	Reps int    `json:"reps" validate:"gte=0,lte=10000"`
}

type WorkoutDayRequest struct {
	Day       string            `json:"day" validate:"required,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
	Exercises []ExerciseRequest `json:"exercises" validate:"dive"`
}

// SetupRequest is the payload of the setup flow. Omitted numbers take the
// defaults the setup form starts with.
type SetupRequest struct {
	DailyWaterGoal *float64            `json:"dailyWaterGoal" validate:"omitempty,gt=0,lte=20000"`
	InitialWeight  *float64            `json:"initialWeight" validate:"omitempty,gt=0,lte=700"`
	Height         *float64            `json:"height" validate:"omitempty,gt=0,lte=300"`
	CountdownDays  *int                `json:"countdownDays" validate:"omitempty,gte=1,lte=3650"`
	WorkoutRoutine []WorkoutDayRequest `json:"workoutRoutine" validate:"dive"`
}

func ValidateSetupRequest(req *SetupRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	seen := make(map[string]bool, len(req.WorkoutRoutine))
	for _, w := range req.WorkoutRoutine {
		if seen[w.Day] {
			return fmt.Errorf("workout routine lists %s more than once", w.Day)
		}
		seen[w.Day] = true
	}
	return nil
}

// ToSetup converts a validated request into a configuration.
func (req *SetupRequest) ToSetup() internal.Setup {
	s := internal.DefaultSetup()
	if req.DailyWaterGoal != nil {
		s.DailyWaterGoal = *req.DailyWaterGoal
	}
	if req.InitialWeight != nil {
		s.InitialWeight = *req.InitialWeight
	}
	if req.Height != nil {
		s.Height = *req.Height
	}
	if req.CountdownDays != nil {
		s.CountdownDays = *req.CountdownDays
	}
	for _, w := range req.WorkoutRoutine {
		day := internal.WorkoutDay{Day: w.Day, Exercises: make([]internal.Exercise, 0, len(w.Exercises))}
		for _, e := range w.Exercises {
			day.Exercises = append(day.Exercises, internal.Exercise{ID: e.ID, Name: e.Name, Sets: e.Sets, Reps: e.Reps})
		}
		s.WorkoutRoutine = append(s.WorkoutRoutine, day)
	}
	return s
}

type DailyUpdateRequest struct {
	Weight           *float64 `json:"weight" validate:"omitempty,gt=0,lte=700"`
	Pushups          *int     `json:"pushups" validate:"omitempty,gte=0,lte=10000"`
	Situps           *int     `json:"situps" validate:"omitempty,gte=0,lte=10000"`
	WorkoutCompleted *bool    `json:"workoutCompleted"`
	Calories         *float64 `json:"calories" validate:"omitempty,gte=0,lte=100000"`
	Protein          *float64 `json:"protein" validate:"omitempty,gte=0,lte=10000"`
	Water            *float64 `json:"water" validate:"omitempty,gte=0,lte=100000"`
}

func ValidateDailyUpdateRequest(req *DailyUpdateRequest) error {
	return validate.Struct(req)
}

func (req *DailyUpdateRequest) ToUpdate() internal.DailyUpdate {
	return internal.DailyUpdate{
		Weight:           req.Weight,
		Pushups:          req.Pushups,
		Situps:           req.Situps,
		WorkoutCompleted: req.WorkoutCompleted,
		Calories:         req.Calories,
		Protein:          req.Protein,
		Water:            req.Water,
	}
}

// NutritionRequest carries the new running total for one nutrition field.
type NutritionRequest struct {
	Total *float64 `json:"total" validate:"required,gte=0,lte=100000"`
}

func ValidateNutritionRequest(req *NutritionRequest) error {
	return validate.Struct(req)
}
