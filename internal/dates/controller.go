package dates

import (
	"errors"
	"net/http"
	"time"

	"venuegate/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// ResolveRequest carries the phrase to resolve. The timezone field is
// reserved; resolution currently uses server time.
type ResolveRequest struct {
	Phrase string `json:"phrase" binding:"required,min=1"`
	TZ     string `json:"tz"`
}

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) ResolveDate(ctx *gin.Context) {
	var req ResolveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(ctx, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	date, err := c.service.Resolve(req.Phrase, time.Now())
	if err != nil {
		if errors.Is(err, ErrUnresolved) {
			// an unparseable phrase is a conversational miss, not a failure
			ctx.JSON(http.StatusOK, response.Envelope{OK: false, Error: "unresolved"})
			return
		}
		response.Fail(ctx, http.StatusInternalServerError, "resolve_failed", err.Error())
		return
	}

	response.OK(ctx, gin.H{"date": date})
}
