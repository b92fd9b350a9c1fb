package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/promo-campaigns/backend/internal/events"
	"github.com/promo-campaigns/backend/internal/models"
	"github.com/promo-campaigns/backend/internal/repositories"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DiscountService evaluates campaign eligibility and commits redemptions.
type DiscountService struct {
	pool         *pgxpool.Pool
	campaignRepo *repositories.CampaignRepo
	customerRepo *repositories.CustomerRepo
	usageRepo    *repositories.UsageRepo
	auditRepo    *repositories.AuditRepo
	publisher    events.Publisher
	log          *zap.Logger
}

func NewDiscountService(
	pool *pgxpool.Pool,
	campaignRepo *repositories.CampaignRepo,
	customerRepo *repositories.CustomerRepo,
	usageRepo *repositories.UsageRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *DiscountService {
	return &DiscountService{
		pool:         pool,
		campaignRepo: campaignRepo,
		customerRepo: customerRepo,
		usageRepo:    usageRepo,
		auditRepo:    auditRepo,
		publisher:    publisher,
		log:          log,
	}
}

// ListAvailable returns the campaigns the customer may redeem right now,
// ordered by campaign id. Pure read; repeated calls against unchanged state
// return the same result.
func (s *DiscountService) ListAvailable(ctx context.Context, customerID uuid.UUID, cartTotal, deliveryFee decimal.Decimal, now time.Time) ([]models.Campaign, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	campaigns, err := s.campaignRepo.ListTargeting(ctx, customerID)
	if err != nil {
		return nil, err
	}

	date := models.UsageDate(now)
	available := make([]models.Campaign, 0, len(campaigns))
	for i := range campaigns {
		c := &campaigns[i]
		usageCount, err := s.usageRepo.GetUsageCount(ctx, c.ID, customerID, date)
		if err != nil {
			return nil, err
		}
		// Targeting already enforced by the query filter.
		if models.EvaluateEligibility(c, true, usageCount, cartTotal, deliveryFee, now).Eligible() {
			available = append(available, *c)
		}
	}
	return available, nil
}

// Apply redeems the campaign for the customer. The spend and usage updates
// commit together or not at all; a commit that loses a race is retried once
// before surfacing ErrConcurrencyConflict.
func (s *DiscountService) Apply(ctx context.Context, campaignID, customerID uuid.UUID, cartTotal, deliveryFee decimal.Decimal, now time.Time) (*models.AppliedDiscount, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	var applied *models.AppliedDiscount
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		applied, err = s.applyOnce(ctx, campaignID, customerID, cartTotal, deliveryFee, now)
		if !errors.Is(err, ErrConcurrencyConflict) {
			break
		}
		s.log.Warn("redemption conflict, retrying",
			zap.String("campaign_id", campaignID.String()),
			zap.String("customer_id", customerID.String()))
	}
	if err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorType:  "service",
		Action:     "campaign_redeemed",
		EntityType: "campaign",
		EntityID:   &campaignID,
		Meta: map[string]any{
			"customer_id":      customerID.String(),
			"discount_type":    applied.DiscountType,
			"discount_applied": applied.DiscountApplied.String(),
		},
	})

	_ = s.publisher.Publish(ctx, "events:redemption", events.Event{
		Type: events.EventCampaignRedeemed,
		Payload: map[string]any{
			"campaign_id":      campaignID.String(),
			"customer_id":      customerID.String(),
			"discount_type":    applied.DiscountType,
			"discount_applied": applied.DiscountApplied.String(),
		},
	})

	return applied, nil
}

func (s *DiscountService) applyOnce(ctx context.Context, campaignID, customerID uuid.UUID, cartTotal, deliveryFee decimal.Decimal, now time.Time) (*models.AppliedDiscount, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	campaign, err := s.campaignRepo.GetForUpdate(ctx, tx, campaignID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCampaignNotFound
		}
		return nil, asConflict(err)
	}

	targeted, err := s.campaignRepo.IsTargeted(ctx, tx, campaignID, customerID)
	if err != nil {
		return nil, asConflict(err)
	}

	date := models.UsageDate(now)
	usageCount, err := s.usageRepo.GetAndLockUsage(ctx, tx, campaignID, customerID, date)
	if err != nil {
		return nil, asConflict(err)
	}

	// Re-evaluated under the row locks, so budget and daily cap hold even
	// against concurrent commits.
	verdict := models.EvaluateEligibility(campaign, targeted, usageCount, cartTotal, deliveryFee, now)
	switch verdict {
	case models.VerdictEligible:
	case models.VerdictDailyLimitReached:
		return nil, ErrUsageLimitExceeded
	default:
		s.log.Debug("campaign not eligible",
			zap.String("campaign_id", campaignID.String()),
			zap.String("verdict", verdict.String()))
		return nil, ErrNotEligible
	}

	applied := models.ApplyDiscount(campaign, cartTotal, deliveryFee)

	if err := s.campaignRepo.AddSpent(ctx, tx, campaignID, campaign.DiscountAmount); err != nil {
		return nil, asConflict(err)
	}
	if err := s.usageRepo.IncrementUsage(ctx, tx, campaignID, customerID, date); err != nil {
		return nil, asConflict(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, asConflict(err)
	}
	return &applied, nil
}

// asConflict maps postgres serialization failures and deadlocks to
// ErrConcurrencyConflict so the caller can retry.
func asConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return ErrConcurrencyConflict
		}
	}
	return err
}
