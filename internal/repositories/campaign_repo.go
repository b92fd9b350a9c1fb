package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/promo-campaigns/backend/internal/models"
	"github.com/shopspring/decimal"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

const campaignColumns = `id, name, discount_type, discount_amount, start_date, end_date,
	       budget, usage_limit_per_customer_per_day, total_spent, created_at, updated_at`

func scanCampaign(row pgx.Row, c *models.Campaign) error {
	return row.Scan(&c.ID, &c.Name, &c.DiscountType, &c.DiscountAmount,
		&c.StartDate, &c.EndDate, &c.Budget, &c.UsageLimitPerCustomerPerDay,
		&c.TotalSpent, &c.CreatedAt, &c.UpdatedAt)
}

// Create inserts the campaign and its target-customer edges in one
// transaction.
func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO campaigns (name, discount_type, discount_amount, start_date, end_date,
		                       budget, usage_limit_per_customer_per_day, total_spent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, total_spent, created_at, updated_at
	`, c.Name, c.DiscountType, c.DiscountAmount, c.StartDate, c.EndDate,
		c.Budget, c.UsageLimitPerCustomerPerDay, c.TotalSpent,
	).Scan(&c.ID, &c.TotalSpent, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertTargetCustomers(ctx, tx, c.ID, c.TargetCustomerIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := scanCampaign(r.pool.QueryRow(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns WHERE id = $1
	`, id), &c)
	if err != nil {
		return nil, err
	}
	c.TargetCustomerIDs, err = r.listTargetCustomerIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetForUpdate loads the campaign row under a row lock. Must run inside the
// caller's transaction; concurrent redemptions against the same campaign
// serialize on this lock.
func (r *CampaignRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := scanCampaign(tx.QueryRow(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns WHERE id = $1
		FOR UPDATE
	`, id), &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) List(ctx context.Context, limit, offset int) ([]models.Campaign, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns
		ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCampaigns(rows)
}

// ListTargeting returns the campaigns whose target set contains the
// customer, ordered by id for a deterministic listing.
func (r *CampaignRepo) ListTargeting(ctx context.Context, customerID uuid.UUID) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name, c.discount_type, c.discount_amount, c.start_date, c.end_date,
		       c.budget, c.usage_limit_per_customer_per_day, c.total_spent, c.created_at, c.updated_at
		FROM campaigns c
		JOIN campaign_customers cc ON cc.campaign_id = c.id
		WHERE cc.customer_id = $1
		ORDER BY c.id
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCampaigns(rows)
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE campaigns SET name = $1, discount_type = $2, discount_amount = $3,
		       start_date = $4, end_date = $5, budget = $6,
		       usage_limit_per_customer_per_day = $7, updated_at = now()
		WHERE id = $8
	`, c.Name, c.DiscountType, c.DiscountAmount, c.StartDate, c.EndDate,
		c.Budget, c.UsageLimitPerCustomerPerDay, c.ID)
	if err != nil {
		return err
	}

	if c.TargetCustomerIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM campaign_customers WHERE campaign_id = $1`, c.ID); err != nil {
			return err
		}
		if err := insertTargetCustomers(ctx, tx, c.ID, c.TargetCustomerIDs); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// Delete removes the campaign; membership edges and usage logs go with it
// via ON DELETE CASCADE.
func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// IsTargeted reports whether the customer is in the campaign's target set.
func (r *CampaignRepo) IsTargeted(ctx context.Context, tx pgx.Tx, campaignID, customerID uuid.UUID) (bool, error) {
	var targeted bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM campaign_customers
			WHERE campaign_id = $1 AND customer_id = $2
		)
	`, campaignID, customerID).Scan(&targeted)
	return targeted, err
}

// AddSpent accumulates a committed discount into total_spent. total_spent
// only ever grows.
func (r *CampaignRepo) AddSpent(ctx context.Context, tx pgx.Tx, campaignID uuid.UUID, amount decimal.Decimal) error {
	_, err := tx.Exec(ctx, `
		UPDATE campaigns SET total_spent = total_spent + $1, updated_at = now()
		WHERE id = $2
	`, amount, campaignID)
	return err
}

func (r *CampaignRepo) listTargetCustomerIDs(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT customer_id FROM campaign_customers
		WHERE campaign_id = $1 ORDER BY customer_id
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func insertTargetCustomers(ctx context.Context, tx pgx.Tx, campaignID uuid.UUID, customerIDs []uuid.UUID) error {
	for _, customerID := range customerIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO campaign_customers (campaign_id, customer_id)
			VALUES ($1, $2)
			ON CONFLICT (campaign_id, customer_id) DO NOTHING
		`, campaignID, customerID)
		if err != nil {
			return err
		}
	}
	return nil
}

func collectCampaigns(rows pgx.Rows) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := scanCampaign(rows, &c); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}
