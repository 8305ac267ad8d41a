package checkout

import "github.com/gin-gonic/gin"

func SetupCheckoutRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/checkout", controller.Checkout)
}
