package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/promo-campaigns/backend/internal/auth"
	"github.com/promo-campaigns/backend/internal/config"
	"go.uber.org/zap"
)

const CtxServiceName = "service_name"

func AuthMiddleware(cfg *config.Config, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
		}

		claims, err := auth.ParseJWT(cfg.JWTSecret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(CtxServiceName, claims.ServiceName)

		return c.Next()
	}
}

func GetServiceName(c *fiber.Ctx) string {
	name, _ := c.Locals(CtxServiceName).(string)
	return name
}
