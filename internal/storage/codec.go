package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yourname/fittracker/internal"
)

func encodeState(state *internal.State) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("storage: encode state: %w", err)
	}
	return data, nil
}

func decodeState(data []byte) (*internal.State, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrStateNotFound
	}
	var state internal.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}
	if state.DailyData == nil {
		state.DailyData = []internal.DailyRecord{}
	}
	if state.HistoricalData == nil {
		state.HistoricalData = []internal.HistoricalRecord{}
	}
	if state.Setup.WorkoutRoutine == nil {
		state.Setup.WorkoutRoutine = []internal.WorkoutDay{}
	}
	return &state, nil
}
