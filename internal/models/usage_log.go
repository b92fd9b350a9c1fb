package models

import (
	"time"

	"github.com/google/uuid"
)

// CampaignUsageLog counts redemptions for one (campaign, customer, day).
// Rows are created lazily on the first redemption of the day and only ever
// incremented.
type CampaignUsageLog struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	UsageDate  time.Time `json:"usage_date"`
	UsageCount int       `json:"usage_count"`
}

// UsageDate truncates now to its local calendar date. The daily cap is
// enforced against this date.
func UsageDate(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
