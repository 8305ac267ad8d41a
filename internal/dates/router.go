package dates

import "github.com/gin-gonic/gin"

func SetupDateRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/resolve-date", controller.ResolveDate)
}
