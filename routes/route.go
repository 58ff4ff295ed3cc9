package routes

import (
	"net/http"

	"github.com/backfireIBGM/RocketInfo/controllers"
	"github.com/backfireIBGM/RocketInfo/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Web mounts the API on a fresh gin engine.
func Web(ctrl *controllers.RocketInfoCtrl, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Invocation(), middleware.RequestLogger(log), gin.Recovery())

	api := router.Group("/api")
	{
		api.GET("/RocketInfo", ctrl.HandleRocketInfo)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}
