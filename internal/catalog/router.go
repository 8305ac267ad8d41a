package catalog

import "github.com/gin-gonic/gin"

func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/packages", controller.Packages)
	rg.POST("/package-info", controller.PackageInfo)
}
