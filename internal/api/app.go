package api

import (
	"github.com/yourname/fittracker/internal"
	"github.com/yourname/fittracker/internal/service"
)

type App interface {
	Logger() internal.Logger
	Tracker() *service.Tracker
}
