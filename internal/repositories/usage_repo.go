package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UsageRepo is the per-(campaign, customer, day) redemption ledger backing
// the daily usage cap.
type UsageRepo struct {
	pool *pgxpool.Pool
}

func NewUsageRepo(pool *pgxpool.Pool) *UsageRepo {
	return &UsageRepo{pool: pool}
}

// GetUsageCount reads today's count without locking. Used on the listing
// path, which needs no isolation beyond a snapshot read.
func (r *UsageRepo) GetUsageCount(ctx context.Context, campaignID, customerID uuid.UUID, date time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT usage_count FROM campaign_usage_logs
		WHERE campaign_id = $1 AND customer_id = $2 AND usage_date = $3
	`, campaignID, customerID, date).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

// GetAndLockUsage returns today's count under a row lock, creating the row
// lazily with count 0 so there is always something to lock. Must run inside
// the redemption transaction.
func (r *UsageRepo) GetAndLockUsage(ctx context.Context, tx pgx.Tx, campaignID, customerID uuid.UUID, date time.Time) (int, error) {
	_, err := tx.Exec(ctx, `
		INSERT INTO campaign_usage_logs (campaign_id, customer_id, usage_date, usage_count)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (campaign_id, customer_id, usage_date) DO NOTHING
	`, campaignID, customerID, date)
	if err != nil {
		return 0, err
	}

	var count int
	err = tx.QueryRow(ctx, `
		SELECT usage_count FROM campaign_usage_logs
		WHERE campaign_id = $1 AND customer_id = $2 AND usage_date = $3
		FOR UPDATE
	`, campaignID, customerID, date).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// IncrementUsage bumps the locked row by one. Counts are never decremented.
func (r *UsageRepo) IncrementUsage(ctx context.Context, tx pgx.Tx, campaignID, customerID uuid.UUID, date time.Time) error {
	_, err := tx.Exec(ctx, `
		UPDATE campaign_usage_logs SET usage_count = usage_count + 1
		WHERE campaign_id = $1 AND customer_id = $2 AND usage_date = $3
	`, campaignID, customerID, date)
	return err
}
