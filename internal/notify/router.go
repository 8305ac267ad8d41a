package notify

import "github.com/gin-gonic/gin"

func SetupNotifyRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/send-link", controller.SendLink)
}
