package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/fittracker/internal"
)

func sampleState() *internal.State {
	w := 81.5
	p := 20
	return &internal.State{
		Setup: internal.Setup{
			DailyWaterGoal: 2500,
			InitialWeight:  82,
			Height:         180,
			CountdownDays:  10,
			WorkoutRoutine: []internal.WorkoutDay{
				{Day: "Monday", Exercises: []internal.Exercise{{ID: "e1", Name: "Squat", Sets: 3, Reps: 10}}},
			},
			SetupComplete: true,
		},
		DailyData: []internal.DailyRecord{
			{Date: "2025-03-10", CountdownDay: 2, Weight: &w, Pushups: &p, Nutrition: internal.Nutrition{Water: 750}},
		},
		HistoricalData: []internal.HistoricalRecord{
			{Date: "2025-03-09", CountdownDay: 1, Weight: 82, Pushups: 10, Situps: 5},
		},
		LastReset: "2025-03-10",
	}
}

// exerciseRepository checks the behaviour every backend must share.
func exerciseRepository(t *testing.T, repo StateRepository) {
	ctx := context.Background()
	require.NoError(t, repo.ClearState(ctx))

	_, err := repo.LoadState(ctx)
	assert.ErrorIs(t, err, ErrStateNotFound)

	want := sampleState()
	require.NoError(t, repo.SaveState(ctx, want))

	got, err := repo.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Saving replaces the whole document.
	want.DailyData = []internal.DailyRecord{{Date: "2025-03-11", CountdownDay: 3}}
	want.LastReset = "2025-03-11"
	require.NoError(t, repo.SaveState(ctx, want))
	got, err = repo.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, repo.ClearState(ctx))
	_, err = repo.LoadState(ctx)
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	repo, err := NewFileStorage(path, internal.NopLogger())
	require.NoError(t, err)
	exerciseRepository(t, repo)
}

func TestFileStorage_CorruptAndEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	repo, err := NewFileStorage(path, internal.NopLogger())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = repo.LoadState(context.Background())
	assert.ErrorIs(t, err, ErrCorruptState)
	assert.NotErrorIs(t, err, ErrStateNotFound)

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	_, err = repo.LoadState(context.Background())
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestFileStorage_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	repo, err := NewFileStorage(path, internal.NopLogger())
	require.NoError(t, err)
	require.NoError(t, repo.SaveState(context.Background(), sampleState()))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestMemoryStorage(t *testing.T) {
	exerciseRepository(t, NewMemoryStorage())
}

func TestMemoryStorage_FailWrites(t *testing.T) {
	repo := NewMemoryStorage()
	ctx := context.Background()
	require.NoError(t, repo.SaveState(ctx, sampleState()))

	repo.FailWrites(assert.AnError)
	assert.ErrorIs(t, repo.SaveState(ctx, &internal.State{LastReset: "2030-01-01"}), assert.AnError)

	got, err := repo.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", got.LastReset)
	assert.Equal(t, 1, repo.Saves())
}

func TestDecodeState_FillsNilSlices(t *testing.T) {
	st, err := decodeState([]byte(`{"lastReset":"2025-01-01"}`))
	require.NoError(t, err)
	assert.NotNil(t, st.DailyData)
	assert.NotNil(t, st.HistoricalData)
	assert.NotNil(t, st.Setup.WorkoutRoutine)
}

func TestSQLiteStorage(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteStorage(ctx, filepath.Join(t.TempDir(), "state.db"), DefaultKey, internal.NopLogger())
	require.NoError(t, err)
	defer repo.Close()
	exerciseRepository(t, repo)
}

func TestPostgresStorage(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	repo, err := NewPostgresStorage(context.Background(), dsn, "fittracker_test", internal.NopLogger())
	require.NoError(t, err)
	defer repo.Close()
	exerciseRepository(t, repo)
}

func TestRedisStorage(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	repo, err := NewRedisStorage(context.Background(), &redis.Options{Addr: addr}, "fittracker_test", internal.NopLogger())
	require.NoError(t, err)
	defer repo.Close()
	exerciseRepository(t, repo)
}
