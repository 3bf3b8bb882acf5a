package api

import "github.com/gin-gonic/gin"

func GetHistory(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		history := app.Tracker().History(c.Request.Context())
		HandleSuccess(c, app.Logger(), history, map[string]any{"count": len(history)})
	}
}

func GetProgress(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), app.Tracker().Progress(c.Request.Context()), nil)
	}
}
