package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/promo-campaigns/backend/internal/config"
	"github.com/promo-campaigns/backend/internal/http/handlers"
	"github.com/promo-campaigns/backend/internal/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	customerHandler *handlers.CustomerHandler,
	campaignHandler *handlers.CampaignHandler,
	discountHandler *handlers.DiscountHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/token", authHandler.IssueToken)

	// Rate-limited endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// Customers
	protected.Post("/customers", customerHandler.CreateCustomer)
	protected.Get("/customers", customerHandler.ListCustomers)
	protected.Get("/customers/:id", customerHandler.GetCustomer)
	protected.Put("/customers/:id", customerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", customerHandler.DeleteCustomer)

	// Campaigns
	protected.Post("/campaigns", campaignHandler.CreateCampaign)
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Get("/campaigns/available", discountHandler.ListAvailable)
	protected.Get("/campaigns/:id", campaignHandler.GetCampaign)
	protected.Put("/campaigns/:id", campaignHandler.UpdateCampaign)
	protected.Delete("/campaigns/:id", campaignHandler.DeleteCampaign)

	// Redemption
	protected.Post("/campaigns/:id/apply", discountHandler.ApplyDiscount)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
