// Package compat keeps the legacy multiplexed endpoint alive: one POST
// carrying {action, args} is translated onto the dedicated services so old
// clients keep working while they migrate.
package compat

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"venuegate/internal/availability"
	"venuegate/internal/catalog"
	"venuegate/internal/checkout"
	"venuegate/internal/dates"
	"venuegate/internal/holds"
	"venuegate/internal/notify"
	"venuegate/internal/pricing"
	"venuegate/internal/shared/utils/response"
	"venuegate/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	availability availability.Service
	pricing      pricing.Service
	holds        holds.Service
	checkout     checkout.Service
	catalog      catalog.Service
	notify       notify.Service
	dates        dates.Service
	validate     *validator.Validate
	log          *logger.Logger
}

func NewController(
	availabilitySvc availability.Service,
	pricingSvc pricing.Service,
	holdsSvc holds.Service,
	checkoutSvc checkout.Service,
	catalogSvc catalog.Service,
	notifySvc notify.Service,
	datesSvc dates.Service,
	log *logger.Logger,
) *Controller {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// the DTOs carry gin binding tags; validate against the same ones
	validate.SetTagName("binding")

	return &Controller{
		availability: availabilitySvc,
		pricing:      pricingSvc,
		holds:        holdsSvc,
		checkout:     checkoutSvc,
		catalog:      catalogSvc,
		notify:       notifySvc,
		dates:        datesSvc,
		validate:     validate,
		log:          log,
	}
}

type compatRequest struct {
	Action string          `json:"action"`
	Args   json.RawMessage `json:"args"`
}

func (c *Controller) Route(ctx *gin.Context) {
	var req compatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(ctx, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	c.log.Warn("deprecated multiplexed endpoint called", slog.String("action", req.Action))

	switch req.Action {
	case "checkAvailability":
		c.checkAvailability(ctx, req.Args)
	case "checkAddons":
		c.checkAddons(ctx, req.Args)
	case "createHold":
		c.createHold(ctx, req.Args)
	case "createCheckoutLink":
		c.createCheckoutLink(ctx, req.Args)
	case "bookingStatus":
		c.bookingStatus(ctx, req.Args)
	case "sendLink":
		c.sendLink(ctx, req.Args)
	case "resolveDate":
		c.resolveDate(ctx, req.Args)
	case "packages":
		c.packages(ctx, req.Args)
	case "packageInfo":
		c.packageInfo(ctx, req.Args)
	default:
		response.Fail(ctx, http.StatusBadRequest, "unknown_action", nil)
	}
}

// decode unmarshals legacy args into the dedicated route's DTO and runs the
// same validation the dedicated route would.
func (c *Controller) decode(ctx *gin.Context, raw json.RawMessage, out any) bool {
	if len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		if err := json.Unmarshal(raw, out); err != nil {
			response.Fail(ctx, http.StatusBadRequest, "invalid_body", err.Error())
			return false
		}
	}
	if err := c.validate.Struct(out); err != nil {
		response.Fail(ctx, http.StatusBadRequest, "invalid_body", err.Error())
		return false
	}
	return true
}

func (c *Controller) checkAvailability(ctx *gin.Context, raw json.RawMessage) {
	var args availability.AvailabilityRequest
	if !c.decode(ctx, raw, &args) {
		return
	}

	result, err := c.availability.FetchAvailability(ctx.Request.Context(), availability.Query{
		VenueID:   args.VenueID,
		ProductID: args.ProductID,
		Date:      args.Date,
		Guests:    args.Guests,
		Window:    args.Window(),
	})
	if err != nil {
		response.FromError(ctx, "availability_failed", err)
		return
	}
	response.OK(ctx, result)
}

func (c *Controller) checkAddons(ctx *gin.Context, raw json.RawMessage) {
	var args pricing.UpgradesRequest
	if !c.decode(ctx, raw, &args) {
		return
	}
	response.OK(ctx, c.pricing.PriceSlot(args.SelectedSlot, args.AddOns))
}

func (c *Controller) createHold(ctx *gin.Context, raw json.RawMessage) {
	var args holds.HoldRequest
	if !c.decode(ctx, raw, &args) {
		return
	}

	hold, err := c.holds.CreateHold(ctx.Request.Context(), args)
	if err != nil {
		response.FromError(ctx, "hold_failed", err)
		return
	}
	response.OK(ctx, hold)
}

func (c *Controller) createCheckoutLink(ctx *gin.Context, raw json.RawMessage) {
	var args checkout.CheckoutRequest
	if !c.decode(ctx, raw, &args) {
		return
	}

	link, err := c.checkout.CreateCheckoutLink(ctx.Request.Context(), args)
	if err != nil {
		response.FromError(ctx, "checkout_failed", err)
		return
	}
	response.OK(ctx, link)
}

func (c *Controller) bookingStatus(ctx *gin.Context, raw json.RawMessage) {
	var args holds.StatusRequest
	if !c.decode(ctx, raw, &args) {
		return
	}

	status, err := c.holds.GetBookingStatus(ctx.Request.Context(), args.HoldID)
	if err != nil {
		response.FromError(ctx, "status_failed", err)
		return
	}
	response.OK(ctx, status)
}

func (c *Controller) sendLink(ctx *gin.Context, raw json.RawMessage) {
	var args notify.SendLinkRequest
	if !c.decode(ctx, raw, &args) {
		return
	}

	result, err := c.notify.SendPaymentLink(ctx.Request.Context(), args)
	if err != nil {
		response.FromError(ctx, "send_link_failed", err)
		return
	}
	response.OK(ctx, result)
}

func (c *Controller) resolveDate(ctx *gin.Context, raw json.RawMessage) {
	var args dates.ResolveRequest
	if !c.decode(ctx, raw, &args) {
		return
	}

	date, err := c.dates.Resolve(args.Phrase, time.Now())
	if err != nil {
		if errors.Is(err, dates.ErrUnresolved) {
			ctx.JSON(http.StatusOK, response.Envelope{OK: false, Error: "unresolved"})
			return
		}
		response.Fail(ctx, http.StatusInternalServerError, "resolve_failed", err.Error())
		return
	}
	response.OK(ctx, gin.H{"date": date})
}

func (c *Controller) packages(ctx *gin.Context, raw json.RawMessage) {
	var args catalog.PackagesRequest
	if !c.decode(ctx, raw, &args) {
		return
	}
	if args.Category == "" {
		args.Category = "Parties"
	}

	products, err := c.catalog.ListProducts(ctx.Request.Context(), args.Category, args.VenueID)
	if err != nil {
		response.FromError(ctx, "packages_failed", err)
		return
	}
	response.OK(ctx, products)
}

func (c *Controller) packageInfo(ctx *gin.Context, raw json.RawMessage) {
	var args catalog.PackageInfoRequest
	if !c.decode(ctx, raw, &args) {
		return
	}
	if args.Code == "" && args.ProductID == "" {
		response.Fail(ctx, http.StatusBadRequest, "invalid_body", "code or product_id required")
		return
	}

	product, err := c.catalog.GetProduct(ctx.Request.Context(), args.Code, args.ProductID, args.VenueID)
	if err != nil {
		response.FromError(ctx, "package_info_failed", err)
		return
	}
	response.OK(ctx, product)
}
