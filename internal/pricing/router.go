package pricing

import "github.com/gin-gonic/gin"

func SetupPricingRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/upgrades", controller.Upgrades)
}
