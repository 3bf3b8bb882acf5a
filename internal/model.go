package internal

// Weekdays lists every weekday name a routine can be keyed by, Sunday first
// to line up with time.Weekday.
var Weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type Exercise struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Sets      int    `json:"sets"`
	Reps      int    `json:"reps"`
	Completed bool   `json:"completed"`
}

type WorkoutDay struct {
	Day       string     `json:"day"` // one of Weekdays
	Exercises []Exercise `json:"exercises"`
}

// Setup is the configuration captured by the setup flow. It only changes on
// a full reset.
type Setup struct {
	DailyWaterGoal float64      `json:"dailyWaterGoal"` // ml
	InitialWeight  float64      `json:"initialWeight"`  // kg
	Height         float64      `json:"height"`         // cm
	CountdownDays  int          `json:"countdownDays"`
	WorkoutRoutine []WorkoutDay `json:"workoutRoutine"`
	SetupComplete  bool         `json:"setupComplete"`
}

type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Water    float64 `json:"water"`
}

type DailyRecord struct {
	Date             string    `json:"date"` // "2025-02-20"
	CountdownDay     int       `json:"countdownDay"`
	Weight           *float64  `json:"weight,omitempty"`
	Pushups          *int      `json:"pushups,omitempty"`
	Situps           *int      `json:"situps,omitempty"`
	WorkoutCompleted bool      `json:"workoutCompleted"`
	Nutrition        Nutrition `json:"nutrition"`
}

// HistoricalRecord is the archived projection of a DailyRecord that had a
// weight logged.
type HistoricalRecord struct {
	Date         string    `json:"date"`
	CountdownDay int       `json:"countdownDay"`
	Weight       float64   `json:"weight"`
	Pushups      int       `json:"pushups"`
	Situps       int       `json:"situps"`
	Nutrition    Nutrition `json:"nutrition"`
}

// State is the whole persisted document.
type State struct {
	Setup          Setup              `json:"setup"`
	DailyData      []DailyRecord      `json:"dailyData"`
	HistoricalData []HistoricalRecord `json:"historicalData"`
	LastReset      string             `json:"lastReset"`
}

// DailyUpdate is a partial update of today's record. Nil fields are left
// untouched.
type DailyUpdate struct {
	Weight           *float64
	Pushups          *int
	Situps           *int
	WorkoutCompleted *bool
	Calories         *float64
	Protein          *float64
	Water            *float64
}

type NutritionField string

const (
	NutritionCalories NutritionField = "calories"
	NutritionProtein  NutritionField = "protein"
	NutritionWater    NutritionField = "water"
)

func (f NutritionField) Valid() bool {
	switch f {
	case NutritionCalories, NutritionProtein, NutritionWater:
		return true
	}
	return false
}

// DefaultSetup mirrors the values the setup form starts with.
func DefaultSetup() Setup {
	return Setup{
		DailyWaterGoal: 2000,
		InitialWeight:  70,
		Height:         175,
		CountdownDays:  10,
		WorkoutRoutine: []WorkoutDay{},
	}
}

// DefaultState is what an absent or unreadable store decodes to.
func DefaultState(today string) *State {
	return &State{
		Setup:          DefaultSetup(),
		DailyData:      []DailyRecord{},
		HistoricalData: []HistoricalRecord{},
		LastReset:      today,
	}
}

// Clone returns a deep copy so callers can't mutate stored records.
func (s *State) Clone() *State {
	c := &State{
		Setup:          s.Setup.Clone(),
		DailyData:      make([]DailyRecord, len(s.DailyData)),
		HistoricalData: make([]HistoricalRecord, len(s.HistoricalData)),
		LastReset:      s.LastReset,
	}
	for i, d := range s.DailyData {
		c.DailyData[i] = d.Clone()
	}
	copy(c.HistoricalData, s.HistoricalData)
	return c
}

func (s Setup) Clone() Setup {
	routine := make([]WorkoutDay, len(s.WorkoutRoutine))
	for i, w := range s.WorkoutRoutine {
		routine[i] = w.Clone()
	}
	s.WorkoutRoutine = routine
	return s
}

func (w WorkoutDay) Clone() WorkoutDay {
	exercises := make([]Exercise, len(w.Exercises))
	copy(exercises, w.Exercises)
	w.Exercises = exercises
	return w
}

func (d DailyRecord) Clone() DailyRecord {
	if d.Weight != nil {
		v := *d.Weight
		d.Weight = &v
	}
	if d.Pushups != nil {
		v := *d.Pushups
		d.Pushups = &v
	}
	if d.Situps != nil {
		v := *d.Situps
		d.Situps = &v
	}
	return d
}

// HasActivity reports whether any of weight, pushups or situps was logged.
func (d DailyRecord) HasActivity() bool {
	return (d.Weight != nil && *d.Weight != 0) ||
		(d.Pushups != nil && *d.Pushups != 0) ||
		(d.Situps != nil && *d.Situps != 0)
}
