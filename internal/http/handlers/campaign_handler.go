package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/promo-campaigns/backend/internal/http/dto"
	"github.com/promo-campaigns/backend/internal/models"
	"github.com/promo-campaigns/backend/internal/services"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	if req.Name == "" || req.DiscountType == "" || req.StartDate.IsZero() || req.EndDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "name, discount_type, start_date, and end_date are required"})
	}

	targetIDs, err := parseCustomerIDs(req.TargetCustomerIDs)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	campaign := &models.Campaign{
		Name:                        req.Name,
		DiscountType:                req.DiscountType,
		DiscountAmount:              req.DiscountAmount,
		StartDate:                   req.StartDate,
		EndDate:                     req.EndDate,
		Budget:                      req.Budget,
		UsageLimitPerCustomerPerDay: req.UsageLimitPerCustomerPerDay,
		TargetCustomerIDs:           targetIDs,
	}

	if err := h.campaignService.Create(c.Context(), campaign); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	campaign, err := h.campaignService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
		}
		h.log.Error("get campaign failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	limit, offset := 20, 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}

	campaigns, err := h.campaignService.List(c.Context(), limit, offset)
	if err != nil {
		h.log.Error("list campaigns failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	targetIDs, err := parseCustomerIDs(req.TargetCustomerIDs)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	campaign := &models.Campaign{
		Name:                        req.Name,
		DiscountType:                req.DiscountType,
		DiscountAmount:              req.DiscountAmount,
		StartDate:                   req.StartDate,
		EndDate:                     req.EndDate,
		Budget:                      req.Budget,
		UsageLimitPerCustomerPerDay: req.UsageLimitPerCustomerPerDay,
		TargetCustomerIDs:           targetIDs,
	}

	if err := h.campaignService.Update(c.Context(), id, campaign); err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	updated, _ := h.campaignService.GetByID(c.Context(), id)
	return c.JSON(dto.SuccessResponse{OK: true, Data: updated})
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	if err := h.campaignService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
		}
		h.log.Error("delete campaign failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

func parseCustomerIDs(raw []string) ([]uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, errors.New("invalid customer id in target_customer_ids")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
