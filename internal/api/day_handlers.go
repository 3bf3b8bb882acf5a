package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/yourname/fittracker/internal"
	"github.com/yourname/fittracker/internal/service"
)

func GetToday(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec := app.Tracker().CurrentDay(c.Request.Context())
		HandleSuccess(c, app.Logger(), rec, nil)
	}
}

func PatchToday(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.DailyUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateDailyUpdateRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		rec := app.Tracker().ApplyDailyUpdate(c.Request.Context(), req.ToUpdate())
		HandleSuccess(c, app.Logger(), rec, nil)
	}
}

func PutNutrition(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		field := internal.NutritionField(c.Param("field"))
		if !field.Valid() {
			HandleError(c, app.Logger(), fmt.Errorf("unknown field %q", field), 400, "Invalid nutrition field")
			return
		}

		var req service.NutritionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateNutritionRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		rec, err := app.Tracker().ApplyNutritionUpdate(c.Request.Context(), field, *req.Total)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Failed to update nutrition")
			return
		}
		HandleSuccess(c, app.Logger(), rec, nil)
	}
}

// GetTodaysWorkout answers with no data and hasWorkout=false on rest days.
func GetTodaysWorkout(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, ok := app.Tracker().TodaysWorkout(c.Request.Context())
		if !ok {
			HandleSuccess(c, app.Logger(), nil, map[string]any{"hasWorkout": false})
			return
		}
		HandleSuccess(c, app.Logger(), w, map[string]any{"hasWorkout": true})
	}
}

func GetMorningBriefing(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), app.Tracker().MorningBriefing(c.Request.Context()), nil)
	}
}
