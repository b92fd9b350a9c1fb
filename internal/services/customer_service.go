package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/promo-campaigns/backend/internal/models"
	"github.com/promo-campaigns/backend/internal/repositories"
	"go.uber.org/zap"
)

type CustomerService struct {
	customerRepo *repositories.CustomerRepo
	auditRepo    *repositories.AuditRepo
	log          *zap.Logger
}

func NewCustomerService(
	customerRepo *repositories.CustomerRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

func (s *CustomerService) Create(ctx context.Context, c *models.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}

	if err := s.customerRepo.Create(ctx, c); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorType:  "service",
		Action:     "customer_created",
		EntityType: "customer",
		EntityID:   &c.ID,
	})

	return nil
}

func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) List(ctx context.Context, limit, offset int) ([]models.Customer, error) {
	return s.customerRepo.List(ctx, limit, offset)
}

func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, c *models.Customer) error {
	if _, err := s.customerRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCustomerNotFound
		}
		return err
	}

	c.ID = id
	if err := validateCustomer(c); err != nil {
		return err
	}
	return s.customerRepo.Update(ctx, c)
}

func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCustomerNotFound
		}
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorType:  "service",
		Action:     "customer_deleted",
		EntityType: "customer",
		EntityID:   &id,
	})

	return nil
}

func validateCustomer(c *models.Customer) error {
	if c.Email == "" || !strings.Contains(c.Email, "@") {
		return fmt.Errorf("valid email is required")
	}
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
