package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/promo-campaigns/backend/internal/auth"
	"github.com/promo-campaigns/backend/internal/config"
	"github.com/promo-campaigns/backend/internal/http/dto"
	"go.uber.org/zap"
)

type AuthHandler struct {
	cfg *config.Config
	log *zap.Logger
}

func NewAuthHandler(cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{cfg: cfg, log: log}
}

// IssueToken exchanges the shared service API key for a JWT.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	if h.cfg.ServiceAPIKey == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "token issuance is disabled"})
	}
	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(h.cfg.ServiceAPIKey)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid api key"})
	}

	name := req.ServiceName
	if name == "" {
		name = "default"
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, name, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("token generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.TokenResponse{Token: token})
}
