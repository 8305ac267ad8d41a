package catalog

import (
	"net/http"

	"venuegate/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// defaultCategory matches the venue's party-booking focus.
const defaultCategory = "Parties"

func (c *Controller) Packages(ctx *gin.Context) {
	var req PackagesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(ctx, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	if req.Category == "" {
		req.Category = defaultCategory
	}

	products, err := c.service.ListProducts(ctx.Request.Context(), req.Category, req.VenueID)
	if err != nil {
		response.FromError(ctx, "packages_failed", err)
		return
	}

	response.OK(ctx, products)
}

func (c *Controller) PackageInfo(ctx *gin.Context) {
	var req PackageInfoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(ctx, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	if req.Code == "" && req.ProductID == "" {
		response.Fail(ctx, http.StatusBadRequest, "invalid_body", "code or product_id required")
		return
	}

	product, err := c.service.GetProduct(ctx.Request.Context(), req.Code, req.ProductID, req.VenueID)
	if err != nil {
		response.FromError(ctx, "package_info_failed", err)
		return
	}

	response.OK(ctx, product)
}
