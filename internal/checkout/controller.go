package checkout

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

func (c *Controller) Checkout(ctx *gin.Context) {
	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(ctx, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	link, err := c.service.CreateCheckoutLink(ctx.Request.Context(), req)
	if err != nil {
		response.FromError(ctx, "checkout_failed", err)
		return
	}

	response.OK(ctx, link)
}
