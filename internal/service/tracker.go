package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/fittracker/internal"
	"github.com/yourname/fittracker/internal/clock"
	"github.com/yourname/fittracker/internal/storage"
)

// Tracker owns the state document for one process. Every read first rolls
// the state over to today if a day boundary has passed; every mutation
// writes the whole document back.
//
// The loaded state stays in memory. A failed write is logged and the
// in-memory copy remains authoritative until the process exits.
type Tracker struct {
	mu     sync.Mutex
	repo   storage.StateRepository
	clock  clock.Clock
	loc    *time.Location
	logger internal.Logger
	state  *internal.State
}

func NewTracker(repo storage.StateRepository, clk clock.Clock, loc *time.Location, logger internal.Logger) *Tracker {
	if loc == nil {
		loc = time.UTC
	}
	return &Tracker{repo: repo, clock: clk, loc: loc, logger: logger}
}

// Today is the current calendar date in the tracker's time zone.
func (t *Tracker) Today() string {
	return clock.Today(t.clock, t.loc)
}

// load returns the cached state, reading it from the repository on first
// use. Absent or undecodable data yields the default state, which is cached
// like any other. Any other read error yields defaults for this call only:
// nothing is cached, so persist stays a no-op and the next call retries.
func (t *Tracker) load(ctx context.Context, today string) *internal.State {
	if t.state != nil {
		return t.state
	}
	st, err := t.repo.LoadState(ctx)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrStateNotFound):
		st = internal.DefaultState(today)
	case errors.Is(err, storage.ErrCorruptState):
		t.logger.Warnf("tracker: stored state is unreadable, starting from defaults: %v", err)
		st = internal.DefaultState(today)
	default:
		t.logger.Errorf("tracker: failed to load state, serving defaults without saving: %v", err)
		return internal.DefaultState(today)
	}
	t.state = st
	return st
}

// persist writes the cached state. It does nothing until a load has
// succeeded, so a backend outage can never overwrite the stored document
// with defaults. The save outlives the caller's context.
func (t *Tracker) persist(ctx context.Context) {
	if t.state == nil {
		return
	}
	if err := t.repo.SaveState(context.WithoutCancel(ctx), t.state); err != nil {
		t.logger.Errorf("tracker: failed to save state: %v", err)
	}
}

// ensureCurrent runs the rollover if needed and persists its result.
func (t *Tracker) ensureCurrent(ctx context.Context, today string) *internal.State {
	st := t.load(ctx, today)
	res := Rollover(st, today)
	if !res.Rolled {
		return st
	}
	switch {
	case res.Archived != nil:
		t.logger.Infof("tracker: rolled over to %s (cycle day %d), archived %s", today, res.CycleDay, res.Archived.Date)
	case res.Dropped != "":
		t.logger.Infof("tracker: rolled over to %s (cycle day %d), discarded %s without weight", today, res.CycleDay, res.Dropped)
	default:
		t.logger.Infof("tracker: rolled over to %s (cycle day %d)", today, res.CycleDay)
	}
	t.persist(ctx)
	return st
}

// todayRecord finds today's record or appends a new one. The bool reports
// whether a record was created.
func (t *Tracker) todayRecord(st *internal.State, today string) (*internal.DailyRecord, bool) {
	for i := len(st.DailyData) - 1; i >= 0; i-- {
		if st.DailyData[i].Date == today {
			return &st.DailyData[i], false
		}
	}
	rec := newDailyRecord(today, NextCycleDay(lastRecord(st), st.Setup.CountdownDays))
	st.DailyData = append(st.DailyData, rec)
	return &st.DailyData[len(st.DailyData)-1], true
}

// Configuration returns a copy of the setup configuration.
func (t *Tracker) Configuration(ctx context.Context) internal.Setup {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ensureCurrent(ctx, t.Today()).Setup.Clone()
}

// CurrentDay returns today's record, creating it if needed.
func (t *Tracker) CurrentDay(ctx context.Context) internal.DailyRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.Today()
	st := t.ensureCurrent(ctx, today)
	rec, created := t.todayRecord(st, today)
	if created {
		t.persist(ctx)
	}
	return rec.Clone()
}

// ApplyDailyUpdate merges the set fields of u into today's record. Each
// field is replaced, not added to.
func (t *Tracker) ApplyDailyUpdate(ctx context.Context, u internal.DailyUpdate) internal.DailyRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.Today()
	st := t.ensureCurrent(ctx, today)
	rec, _ := t.todayRecord(st, today)
	mergeUpdate(rec, u)
	t.persist(ctx)
	return rec.Clone()
}

func mergeUpdate(rec *internal.DailyRecord, u internal.DailyUpdate) {
	if u.Weight != nil {
		v := *u.Weight
		rec.Weight = &v
	}
	if u.Pushups != nil {
		v := *u.Pushups
		rec.Pushups = &v
	}
	if u.Situps != nil {
		v := *u.Situps
		rec.Situps = &v
	}
	if u.WorkoutCompleted != nil {
		rec.WorkoutCompleted = *u.WorkoutCompleted
	}
	if u.Calories != nil {
		rec.Nutrition.Calories = *u.Calories
	}
	if u.Protein != nil {
		rec.Nutrition.Protein = *u.Protein
	}
	if u.Water != nil {
		rec.Nutrition.Water = *u.Water
	}
}

// ApplyNutritionUpdate stores total as today's value for field. Callers
// pass the running total; the tracker does not accumulate.
func (t *Tracker) ApplyNutritionUpdate(ctx context.Context, field internal.NutritionField, total float64) (internal.DailyRecord, error) {
	var u internal.DailyUpdate
	switch field {
	case internal.NutritionCalories:
		u.Calories = &total
	case internal.NutritionProtein:
		u.Protein = &total
	case internal.NutritionWater:
		u.Water = &total
	default:
		return internal.DailyRecord{}, fmt.Errorf("tracker: unknown nutrition field %q", field)
	}
	return t.ApplyDailyUpdate(ctx, u), nil
}

// TodaysWorkout looks up the routine entry for today's weekday. The bool is
// false when nothing is configured for that day.
func (t *Tracker) TodaysWorkout(ctx context.Context) (internal.WorkoutDay, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.Today()
	st := t.ensureCurrent(ctx, today)
	rec, created := t.todayRecord(st, today)
	if created {
		t.persist(ctx)
	}
	day, err := clock.WeekdayName(rec.Date)
	if err != nil {
		t.logger.Warnf("tracker: bad record date %q: %v", rec.Date, err)
		return internal.WorkoutDay{}, false
	}
	return WorkoutFor(st.Setup, day)
}

// WorkoutFor returns the routine entry for a weekday name.
func WorkoutFor(setup internal.Setup, weekday string) (internal.WorkoutDay, bool) {
	for _, w := range setup.WorkoutRoutine {
		if w.Day == weekday {
			return w.Clone(), true
		}
	}
	return internal.WorkoutDay{}, false
}

// CompleteSetup stores the configuration and starts the cycle at day 1
// today. History from before is kept.
func (t *Tracker) CompleteSetup(ctx context.Context, setup internal.Setup) internal.DailyRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.Today()
	st := t.load(ctx, today)

	setup = setup.Clone()
	setup.SetupComplete = true
	for i := range setup.WorkoutRoutine {
		for j := range setup.WorkoutRoutine[i].Exercises {
			if setup.WorkoutRoutine[i].Exercises[j].ID == "" {
				setup.WorkoutRoutine[i].Exercises[j].ID = uuid.NewString()
			}
		}
	}

	st.Setup = setup
	st.LastReset = today
	st.DailyData = []internal.DailyRecord{newDailyRecord(today, 1)}
	t.logger.Infof("tracker: setup completed on %s with a %d day cycle", today, setup.CountdownDays)
	t.persist(ctx)
	return st.DailyData[0].Clone()
}

// History returns the archived days in the order they were archived.
func (t *Tracker) History(ctx context.Context) []internal.HistoricalRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.ensureCurrent(ctx, t.Today())
	out := make([]internal.HistoricalRecord, len(st.HistoricalData))
	copy(out, st.HistoricalData)
	return out
}

// ResetEverything wipes the stored document. The in-memory state goes back
// to defaults even if the backend refuses the delete.
func (t *Tracker) ResetEverything(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = internal.DefaultState(t.Today())
	if err := t.repo.ClearState(ctx); err != nil {
		t.logger.Errorf("tracker: failed to clear state: %v", err)
		return fmt.Errorf("tracker: reset: %w", err)
	}
	t.logger.Warn("tracker: all data reset")
	return nil
}

// snapshot returns a deep copy of the current state after any rollover,
// together with the date it was taken for.
func (t *Tracker) snapshot(ctx context.Context) (*internal.State, string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.Today()
	st := t.ensureCurrent(ctx, today)
	if _, created := t.todayRecord(st, today); created {
		t.persist(ctx)
	}
	return st.Clone(), today
}
