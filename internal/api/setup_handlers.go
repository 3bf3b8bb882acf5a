package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/fittracker/internal/service"
)

func GetSetup(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := app.Tracker().Configuration(c.Request.Context())
		HandleSuccess(c, app.Logger(), cfg, nil)
	}
}

func PostSetup(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SetupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateSetupRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Setup validation failed")
			return
		}

		ctx := c.Request.Context()
		today := app.Tracker().CompleteSetup(ctx, req.ToSetup())
		HandleSuccess(c, app.Logger(), app.Tracker().Configuration(ctx), map[string]any{"today": today})
	}
}

// DeleteData wipes every stored record, setup included.
func DeleteData(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := app.Tracker().ResetEverything(c.Request.Context()); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to reset data")
			return
		}
		HandleSuccess(c, app.Logger(), nil, map[string]any{"reset": true})
	}
}
