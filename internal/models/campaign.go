package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Discount types a campaign can carry.
const (
	DiscountTypeCart     = "cart"
	DiscountTypeDelivery = "delivery"
)

func IsValidDiscountType(t string) bool {
	return t == DiscountTypeCart || t == DiscountTypeDelivery
}

type Campaign struct {
	ID                          uuid.UUID       `json:"id"`
	Name                        string          `json:"name"`
	DiscountType                string          `json:"discount_type"`
	DiscountAmount              decimal.Decimal `json:"discount_amount"`
	StartDate                   time.Time       `json:"start_date"`
	EndDate                     time.Time       `json:"end_date"`
	Budget                      decimal.Decimal `json:"budget"`
	UsageLimitPerCustomerPerDay int             `json:"usage_limit_per_customer_per_day"`
	TotalSpent                  decimal.Decimal `json:"total_spent"`
	TargetCustomerIDs           []uuid.UUID     `json:"target_customer_ids,omitempty"`
	CreatedAt                   time.Time       `json:"created_at"`
	UpdatedAt                   time.Time       `json:"updated_at"`
}

// IsActive reports whether the campaign can currently be redeemed against.
// The window is inclusive on both ends; a campaign that has spent its whole
// budget is inactive regardless of dates.
func (c *Campaign) IsActive(now time.Time) bool {
	if now.Before(c.StartDate) || now.After(c.EndDate) {
		return false
	}
	return c.TotalSpent.LessThan(c.Budget)
}
