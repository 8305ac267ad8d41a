package holds

import "github.com/gin-gonic/gin"

func SetupHoldRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/hold", controller.CreateHold)
	rg.POST("/status", controller.BookingStatus)
}
