package compat

import "github.com/gin-gonic/gin"

func SetupCompatRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/roller/router", controller.Route)
}
