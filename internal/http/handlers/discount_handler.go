package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/promo-campaigns/backend/internal/http/dto"
	"github.com/promo-campaigns/backend/internal/services"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DiscountHandler struct {
	discountService *services.DiscountService
	log             *zap.Logger
}

func NewDiscountHandler(discountService *services.DiscountService, log *zap.Logger) *DiscountHandler {
	return &DiscountHandler{discountService: discountService, log: log}
}

// ListAvailable returns the campaigns the customer can redeem against the
// given cart context.
func (h *DiscountHandler) ListAvailable(c *fiber.Ctx) error {
	customerID, err := uuid.Parse(c.Query("customer_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "customer_id is required"})
	}

	cartTotal, err := parseAmount(c.Query("cart_total", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid cart_total"})
	}
	deliveryFee, err := parseAmount(c.Query("delivery_fee", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid delivery_fee"})
	}

	campaigns, err := h.discountService.ListAvailable(c.Context(), customerID, cartTotal, deliveryFee, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "customer not found"})
		}
		h.log.Error("list available campaigns failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

// ApplyDiscount commits a redemption of the campaign for the customer.
func (h *DiscountHandler) ApplyDiscount(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.ApplyDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "customer_id is required"})
	}
	if req.CartTotal.IsNegative() || req.DeliveryFee.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cart_total and delivery_fee must not be negative"})
	}

	applied, err := h.discountService.Apply(c.Context(), campaignID, customerID, req.CartTotal, req.DeliveryFee, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCampaignNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
		case errors.Is(err, services.ErrCustomerNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "customer not found"})
		case errors.Is(err, services.ErrNotEligible):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Error: "campaign not eligible"})
		case errors.Is(err, services.ErrUsageLimitExceeded):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "daily usage limit exceeded"})
		case errors.Is(err, services.ErrConcurrencyConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "concurrent redemption, retry"})
		}
		h.log.Error("apply discount failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.AppliedDiscountResponse{
		CampaignID:      applied.CampaignID.String(),
		DiscountType:    applied.DiscountType,
		DiscountApplied: applied.DiscountApplied,
		NewCartTotal:    applied.NewCartTotal,
		NewDeliveryFee:  applied.NewDeliveryFee,
	}})
}

// parseAmount rejects anything decimal.NewFromString cannot parse exactly;
// monetary values never pass through floats.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errors.New("negative amount")
	}
	return d, nil
}
