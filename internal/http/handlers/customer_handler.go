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

type CustomerHandler struct {
	customerService *services.CustomerService
	log             *zap.Logger
}

func NewCustomerHandler(customerService *services.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, log: log}
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	customer := &models.Customer{Email: req.Email, Name: req.Name}
	if err := h.customerService.Create(c.Context(), customer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: customer})
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid customer id"})
	}

	customer, err := h.customerService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "customer not found"})
		}
		h.log.Error("get customer failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: customer})
}

func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
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

	customers, err := h.customerService.List(c.Context(), limit, offset)
	if err != nil {
		h.log.Error("list customers failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: customers})
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid customer id"})
	}

	var req dto.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	customer := &models.Customer{Email: req.Email, Name: req.Name}
	if err := h.customerService.Update(c.Context(), id, customer); err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "customer not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	updated, _ := h.customerService.GetByID(c.Context(), id)
	return c.JSON(dto.SuccessResponse{OK: true, Data: updated})
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid customer id"})
	}

	if err := h.customerService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "customer not found"})
		}
		h.log.Error("delete customer failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}
