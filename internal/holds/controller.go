package holds

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

func (c *Controller) CreateHold(ctx *gin.Context) {
	var req HoldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(ctx, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	hold, err := c.service.CreateHold(ctx.Request.Context(), req)
	if err != nil {
		response.FromError(ctx, "hold_failed", err)
		return
	}

	response.OK(ctx, hold)
}

func (c *Controller) BookingStatus(ctx *gin.Context) {
	var req StatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(ctx, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	status, err := c.service.GetBookingStatus(ctx.Request.Context(), req.HoldID)
	if err != nil {
		response.FromError(ctx, "status_failed", err)
		return
	}

	response.OK(ctx, status)
}
