package availability

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

func (c *Controller) Availability(ctx *gin.Context) {
	var req AvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(ctx, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	result, err := c.service.FetchAvailability(ctx.Request.Context(), Query{
		VenueID:   req.VenueID,
		ProductID: req.ProductID,
		Date:      req.Date,
		Guests:    req.Guests,
		Window:    req.Window(),
	})
	if err != nil {
		response.FromError(ctx, "availability_failed", err)
		return
	}

	response.OK(ctx, result)
}

func (c *Controller) AvailabilityBatch(ctx *gin.Context) {
	var req BatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(ctx, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	items := make([]BatchItem, 0, len(req.Requests))
	for _, r := range req.Requests {
		items = append(items, r.Item())
	}

	results, err := c.service.FetchAvailabilityBatch(ctx.Request.Context(), req.VenueID, req.ProductID, items)
	if err != nil {
		response.FromError(ctx, "availability_batch_failed", err)
		return
	}

	response.OK(ctx, gin.H{"results": results})
}
