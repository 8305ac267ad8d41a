// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"venuegate/internal/availability"
	"venuegate/internal/catalog"
	"venuegate/internal/checkout"
	"venuegate/internal/compat"
	"venuegate/internal/dates"
	"venuegate/internal/holds"
	"venuegate/internal/notify"
	"venuegate/internal/pricing"
	"venuegate/internal/shared/config"
	"venuegate/internal/shared/middleware"
	"venuegate/internal/upstream"
	"venuegate/pkg/cache"
	"venuegate/pkg/logger"
	"venuegate/pkg/ratelimit"

	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	log      *logger.Logger
	redis    *redis.Client
	limiter  *ratelimit.RateLimiter
	producer sarama.SyncProducer
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, log *logger.Logger, redisClient *redis.Client, limiter *ratelimit.RateLimiter, producer sarama.SyncProducer) *Router {
	return &Router{
		config:   cfg,
		log:      log,
		redis:    redisClient,
		limiter:  limiter,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.Use(
		middleware.RequestID(),
		middleware.BodyLimit(r.config.MaxBodyBytes),
		middleware.RequestLogger(r.log),
	)

	r.setupHealthRoutes(engine)

	// Shared upstream client: one credential cache for every component
	client := upstream.New(r.config.Roller, r.log)

	table, err := catalog.LoadTable("")
	if err != nil {
		// the embedded table is compiled in; failing to parse it is a build defect
		panic(err)
	}

	catalogService := catalog.NewService(client, table)
	availabilityService := availability.NewService(client, catalogService)
	pricingService := pricing.NewService(catalogService)
	holdsService := holds.NewService(client)
	checkoutService := checkout.NewService(client)
	notifyService := notify.NewService(r.producer, r.config.Kafka.Topic, r.config.Roller.Mock, r.log)
	datesService := dates.NewService()

	api := engine.Group("", ratelimit.Middleware(r.limiter, ratelimit.RateLimitTypeDefault))
	{
		availability.SetupAvailabilityRoutes(api, availability.NewController(availabilityService))
		pricing.SetupPricingRoutes(api, pricing.NewController(pricingService))
		catalog.SetupCatalogRoutes(api, catalog.NewController(catalogService))
		notify.SetupNotifyRoutes(api, notify.NewController(notifyService))
		dates.SetupDateRoutes(api, dates.NewController(datesService))

		compatController := compat.NewController(
			availabilityService,
			pricingService,
			holdsService,
			checkoutService,
			catalogService,
			notifyService,
			datesService,
			r.log,
		)
		compat.SetupCompatRoutes(api, compatController)
	}

	// hold and checkout mutate upstream state; tighter budget
	booking := engine.Group("", ratelimit.Middleware(r.limiter, ratelimit.RateLimitTypeBooking))
	{
		holds.SetupHoldRoutes(booking, holds.NewController(holdsService))
		checkout.SetupCheckoutRoutes(booking, checkout.NewController(checkoutService))
	}
}

// setupHealthRoutes sets up the health check route
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", ratelimit.Middleware(r.limiter, ratelimit.RateLimitTypeHealth), func(c *gin.Context) {
		payload := gin.H{
			"ok": true,
			"ts": time.Now().UnixMilli(),
		}
		if r.redis != nil {
			payload["redis"] = cache.HealthCheck(c.Request.Context(), r.redis) == nil
		}
		c.JSON(http.StatusOK, payload)
	})
}
