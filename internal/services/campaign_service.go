package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/promo-campaigns/backend/internal/models"
	"github.com/promo-campaigns/backend/internal/repositories"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaignRepo *repositories.CampaignRepo
	customerRepo *repositories.CustomerRepo
	auditRepo    *repositories.AuditRepo
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	customerRepo *repositories.CustomerRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

func (s *CampaignService) Create(ctx context.Context, c *models.Campaign) error {
	if err := s.validate(ctx, c); err != nil {
		return err
	}

	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorType:  "service",
		Action:     "campaign_created",
		EntityType: "campaign",
		EntityID:   &c.ID,
		Meta:       map[string]any{"name": c.Name, "discount_type": c.DiscountType},
	})

	return nil
}

func (s *CampaignService) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CampaignService) List(ctx context.Context, limit, offset int) ([]models.Campaign, error) {
	return s.campaignRepo.List(ctx, limit, offset)
}

func (s *CampaignService) Update(ctx context.Context, id uuid.UUID, c *models.Campaign) error {
	existing, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCampaignNotFound
		}
		return err
	}

	c.ID = id
	c.TotalSpent = existing.TotalSpent
	if err := s.validate(ctx, c); err != nil {
		return err
	}

	if err := s.campaignRepo.Update(ctx, c); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorType:  "service",
		Action:     "campaign_updated",
		EntityType: "campaign",
		EntityID:   &id,
	})

	return nil
}

func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.campaignRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCampaignNotFound
		}
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorType:  "service",
		Action:     "campaign_deleted",
		EntityType: "campaign",
		EntityID:   &id,
	})

	return nil
}

func (s *CampaignService) validate(ctx context.Context, c *models.Campaign) error {
	if !models.IsValidDiscountType(c.DiscountType) {
		return fmt.Errorf("invalid discount type %q, must be one of: cart, delivery", c.DiscountType)
	}
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	if c.DiscountAmount.IsNegative() || c.DiscountAmount.IsZero() {
		return fmt.Errorf("discount_amount must be positive")
	}
	if c.Budget.IsNegative() || c.Budget.IsZero() {
		return fmt.Errorf("budget must be positive")
	}
	if c.UsageLimitPerCustomerPerDay <= 0 {
		return fmt.Errorf("usage_limit_per_customer_per_day must be positive")
	}
	for _, customerID := range c.TargetCustomerIDs {
		if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("target customer %s not found", customerID)
			}
			return err
		}
	}
	return nil
}
