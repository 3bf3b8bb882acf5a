package service

import (
	"context"
	"math/rand"
)

var quotes = []string{
	"The only bad workout is the one that didn't happen.",
	"Discipline is choosing between what you want now and what you want most.",
	"Small steps every day add up to big results.",
	"You don't have to be extreme, just consistent.",
	"Strength grows in the moments you think you can't go on.",
	"Show up today. Tomorrow will thank you.",
	"Progress, not perfection.",
	"A one hour workout is four percent of your day.",
}

// Briefing is what the user sees when they open the app in the morning.
type Briefing struct {
	CountdownDay    int    `json:"countdownDay"`
	TotalDays       int    `json:"totalDays"`
	HasLoggedWeight bool   `json:"hasLoggedWeight"`
	SetupComplete   bool   `json:"setupComplete"`
	Quote           string `json:"quote"`
}

// MorningBriefing summarises today's position in the cycle with a random
// quote.
func (t *Tracker) MorningBriefing(ctx context.Context) Briefing {
	st, date := t.snapshot(ctx)
	today := st.DailyData[len(st.DailyData)-1]
	for _, d := range st.DailyData {
		if d.Date == date {
			today = d
		}
	}
	return Briefing{
		CountdownDay:    today.CountdownDay,
		TotalDays:       st.Setup.CountdownDays,
		HasLoggedWeight: today.Weight != nil,
		SetupComplete:   st.Setup.SetupComplete,
		Quote:           quotes[rand.Intn(len(quotes))],
	}
}
