package api

import "github.com/gin-gonic/gin"

func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), AccessLogMiddleware(app.Logger()))

	g := r.Group("/api")
	g.GET("/setup", GetSetup(app))
	g.POST("/setup", PostSetup(app))
	g.GET("/today", GetToday(app))
	g.PATCH("/today", PatchToday(app))
	g.PUT("/today/nutrition/:field", PutNutrition(app))
	g.GET("/today/workout", GetTodaysWorkout(app))
	g.GET("/today/morning", GetMorningBriefing(app))
	g.GET("/history", GetHistory(app))
	g.GET("/progress", GetProgress(app))
	g.DELETE("/data", DeleteData(app))
	return r
}
