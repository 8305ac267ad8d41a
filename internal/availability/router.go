package availability

import "github.com/gin-gonic/gin"

func SetupAvailabilityRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/availability", controller.Availability)
	rg.POST("/availability/batch", controller.AvailabilityBatch)
}
