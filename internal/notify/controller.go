package notify

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

func (c *Controller) SendLink(ctx *gin.Context) {
	var req SendLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(ctx, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	result, err := c.service.SendPaymentLink(ctx.Request.Context(), req)
	if err != nil {
		response.FromError(ctx, "send_link_failed", err)
		return
	}

	response.OK(ctx, result)
}
