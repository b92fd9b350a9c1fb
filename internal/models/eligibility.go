package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EligibilityVerdict is the outcome of evaluating one campaign for one
// customer. Verdicts stay distinct so the apply path can report a daily
// limit hit separately from a plain ineligibility.
type EligibilityVerdict int

const (
	VerdictEligible EligibilityVerdict = iota
	VerdictNotActive
	VerdictNotTargeted
	VerdictDailyLimitReached
	VerdictThresholdNotMet
	VerdictUnknownDiscountType
)

func (v EligibilityVerdict) Eligible() bool {
	return v == VerdictEligible
}

func (v EligibilityVerdict) String() string {
	switch v {
	case VerdictEligible:
		return "eligible"
	case VerdictNotActive:
		return "not_active"
	case VerdictNotTargeted:
		return "not_targeted"
	case VerdictDailyLimitReached:
		return "daily_limit_reached"
	case VerdictThresholdNotMet:
		return "threshold_not_met"
	case VerdictUnknownDiscountType:
		return "unknown_discount_type"
	}
	return "unknown"
}

// EvaluateEligibility decides whether a campaign may be applied. Checks run
// in order and short-circuit on the first failure: active window and budget,
// targeting, daily usage cap, then the discount-type threshold. Equality
// meets the threshold.
func EvaluateEligibility(c *Campaign, targeted bool, usageCount int, cartTotal, deliveryFee decimal.Decimal, now time.Time) EligibilityVerdict {
	if !c.IsActive(now) {
		return VerdictNotActive
	}
	if !targeted {
		return VerdictNotTargeted
	}
	if usageCount >= c.UsageLimitPerCustomerPerDay {
		return VerdictDailyLimitReached
	}
	switch c.DiscountType {
	case DiscountTypeCart:
		if cartTotal.GreaterThanOrEqual(c.DiscountAmount) {
			return VerdictEligible
		}
	case DiscountTypeDelivery:
		if deliveryFee.GreaterThanOrEqual(c.DiscountAmount) {
			return VerdictEligible
		}
	default:
		return VerdictUnknownDiscountType
	}
	return VerdictThresholdNotMet
}

// AppliedDiscount is the result of a committed redemption. The total the
// discount did not apply to passes through unchanged.
type AppliedDiscount struct {
	CampaignID      uuid.UUID       `json:"campaign_id"`
	DiscountType    string          `json:"discount_type"`
	DiscountApplied decimal.Decimal `json:"discount_applied"`
	NewCartTotal    decimal.Decimal `json:"new_cart_total"`
	NewDeliveryFee  decimal.Decimal `json:"new_delivery_fee"`
}

// ApplyDiscount computes the adjusted totals for an already-validated
// redemption. It does not mutate the campaign.
func ApplyDiscount(c *Campaign, cartTotal, deliveryFee decimal.Decimal) AppliedDiscount {
	applied := AppliedDiscount{
		CampaignID:      c.ID,
		DiscountType:    c.DiscountType,
		DiscountApplied: c.DiscountAmount,
		NewCartTotal:    cartTotal,
		NewDeliveryFee:  deliveryFee,
	}
	switch c.DiscountType {
	case DiscountTypeCart:
		applied.NewCartTotal = cartTotal.Sub(c.DiscountAmount)
	case DiscountTypeDelivery:
		applied.NewDeliveryFee = deliveryFee.Sub(c.DiscountAmount)
	}
	return applied
}
