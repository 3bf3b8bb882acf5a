package service

import "github.com/yourname/fittracker/internal"

// Archive projects a finished day into history. Days without a weight are
// not archived.
func Archive(rec internal.DailyRecord) (internal.HistoricalRecord, bool) {
	if rec.Weight == nil {
		return internal.HistoricalRecord{}, false
	}
	h := internal.HistoricalRecord{
		Date:         rec.Date,
		CountdownDay: rec.CountdownDay,
		Weight:       *rec.Weight,
		Nutrition:    rec.Nutrition,
	}
	if rec.Pushups != nil {
		h.Pushups = *rec.Pushups
	}
	if rec.Situps != nil {
		h.Situps = *rec.Situps
	}
	return h, true
}

func newDailyRecord(date string, cycleDay int) internal.DailyRecord {
	return internal.DailyRecord{
		Date:         date,
		CountdownDay: cycleDay,
	}
}

func lastRecord(state *internal.State) *internal.DailyRecord {
	if len(state.DailyData) == 0 {
		return nil
	}
	return &state.DailyData[len(state.DailyData)-1]
}

// RolloverResult describes what a rollover did.
type RolloverResult struct {
	Rolled   bool
	Archived *internal.HistoricalRecord
	Dropped  string // date of an outgoing record discarded for lack of weight
	CycleDay int
}

// Rollover moves state from a stale day to today. It archives the outgoing
// record, starts a fresh record with the next cycle day and stamps the
// last-reset date. It does nothing when state is already current.
func Rollover(state *internal.State, today string) RolloverResult {
	if !BoundaryCrossed(state, today) {
		return RolloverResult{}
	}

	var res RolloverResult
	outgoing := lastRecord(state)
	if outgoing != nil {
		if h, ok := Archive(*outgoing); ok {
			state.HistoricalData = append(state.HistoricalData, h)
			res.Archived = &h
		} else {
			res.Dropped = outgoing.Date
		}
	}

	res.Rolled = true
	res.CycleDay = NextCycleDay(outgoing, state.Setup.CountdownDays)
	state.DailyData = []internal.DailyRecord{newDailyRecord(today, res.CycleDay)}
	state.LastReset = today
	return res
}
