package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testCampaign() *Campaign {
	return &Campaign{
		Name:                        "Test Cart Discount",
		DiscountType:                DiscountTypeCart,
		DiscountAmount:              decimal.NewFromInt(50),
		StartDate:                   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:                     time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC),
		Budget:                      decimal.NewFromInt(500),
		UsageLimitPerCustomerPerDay: 2,
		TotalSpent:                  decimal.Zero,
	}
}

var testNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func TestEvaluateEligibility(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Campaign)
		targeted    bool
		usageCount  int
		cartTotal   int64
		deliveryFee int64
		now         time.Time
		want        EligibilityVerdict
	}{
		{
			name: "eligible cart discount",
			targeted: true, cartTotal: 200, deliveryFee: 20, now: testNow,
			want: VerdictEligible,
		},
		{
			name: "before start date",
			targeted: true, cartTotal: 200, deliveryFee: 20,
			now: time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC),
			want: VerdictNotActive,
		},
		{
			name: "after end date",
			targeted: true, cartTotal: 200, deliveryFee: 20,
			now: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			want: VerdictNotActive,
		},
		{
			name: "window boundaries inclusive",
			targeted: true, cartTotal: 200, deliveryFee: 20,
			now: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			want: VerdictEligible,
		},
		{
			name: "budget exhausted",
			modify: func(c *Campaign) { c.TotalSpent = decimal.NewFromInt(500) },
			targeted: true, cartTotal: 200, deliveryFee: 20, now: testNow,
			want: VerdictNotActive,
		},
		{
			name: "budget nearly exhausted still active",
			modify: func(c *Campaign) { c.TotalSpent = decimal.RequireFromString("499.99") },
			targeted: true, cartTotal: 200, deliveryFee: 20, now: testNow,
			want: VerdictEligible,
		},
		{
			name: "not targeted",
			targeted: false, cartTotal: 200, deliveryFee: 20, now: testNow,
			want: VerdictNotTargeted,
		},
		{
			name: "daily limit reached",
			targeted: true, usageCount: 2, cartTotal: 200, deliveryFee: 20, now: testNow,
			want: VerdictDailyLimitReached,
		},
		{
			name: "daily limit exceeded",
			targeted: true, usageCount: 3, cartTotal: 200, deliveryFee: 20, now: testNow,
			want: VerdictDailyLimitReached,
		},
		{
			name: "one redemption left today",
			targeted: true, usageCount: 1, cartTotal: 200, deliveryFee: 20, now: testNow,
			want: VerdictEligible,
		},
		{
			name: "cart total below discount amount",
			targeted: true, cartTotal: 49, deliveryFee: 20, now: testNow,
			want: VerdictThresholdNotMet,
		},
		{
			name: "cart total equal to discount amount",
			targeted: true, cartTotal: 50, deliveryFee: 20, now: testNow,
			want: VerdictEligible,
		},
		{
			name: "delivery fee below discount amount",
			modify: func(c *Campaign) { c.DiscountType = DiscountTypeDelivery; c.DiscountAmount = decimal.NewFromInt(30) },
			targeted: true, cartTotal: 200, deliveryFee: 20, now: testNow,
			want: VerdictThresholdNotMet,
		},
		{
			name: "delivery fee equal to discount amount",
			modify: func(c *Campaign) { c.DiscountType = DiscountTypeDelivery; c.DiscountAmount = decimal.NewFromInt(20) },
			targeted: true, cartTotal: 200, deliveryFee: 20, now: testNow,
			want: VerdictEligible,
		},
		{
			name: "unknown discount type never eligible",
			modify: func(c *Campaign) { c.DiscountType = "loyalty" },
			targeted: true, cartTotal: 200, deliveryFee: 200, now: testNow,
			want: VerdictUnknownDiscountType,
		},
		{
			name: "inactive checked before targeting",
			modify: func(c *Campaign) { c.TotalSpent = decimal.NewFromInt(500) },
			targeted: false, cartTotal: 200, deliveryFee: 20, now: testNow,
			want: VerdictNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCampaign()
			if tt.modify != nil {
				tt.modify(c)
			}
			got := EvaluateEligibility(c, tt.targeted, tt.usageCount,
				decimal.NewFromInt(tt.cartTotal), decimal.NewFromInt(tt.deliveryFee), tt.now)
			if got != tt.want {
				t.Errorf("EvaluateEligibility() = %v, want %v", got, tt.want)
			}
			if got.Eligible() != (tt.want == VerdictEligible) {
				t.Errorf("Eligible() = %v for verdict %v", got.Eligible(), got)
			}
		})
	}
}

func TestApplyDiscountCart(t *testing.T) {
	c := testCampaign()
	applied := ApplyDiscount(c, decimal.NewFromInt(200), decimal.NewFromInt(20))

	if applied.DiscountType != DiscountTypeCart {
		t.Errorf("DiscountType = %q, want %q", applied.DiscountType, DiscountTypeCart)
	}
	if !applied.DiscountApplied.Equal(decimal.NewFromInt(50)) {
		t.Errorf("DiscountApplied = %s, want 50", applied.DiscountApplied)
	}
	if !applied.NewCartTotal.Equal(decimal.NewFromInt(150)) {
		t.Errorf("NewCartTotal = %s, want 150", applied.NewCartTotal)
	}
	if !applied.NewDeliveryFee.Equal(decimal.NewFromInt(20)) {
		t.Errorf("NewDeliveryFee = %s, want unchanged 20", applied.NewDeliveryFee)
	}
}

func TestApplyDiscountDelivery(t *testing.T) {
	c := testCampaign()
	c.DiscountType = DiscountTypeDelivery
	c.DiscountAmount = decimal.RequireFromString("15.50")

	applied := ApplyDiscount(c, decimal.NewFromInt(200), decimal.NewFromInt(20))

	if !applied.NewCartTotal.Equal(decimal.NewFromInt(200)) {
		t.Errorf("NewCartTotal = %s, want unchanged 200", applied.NewCartTotal)
	}
	if !applied.NewDeliveryFee.Equal(decimal.RequireFromString("4.50")) {
		t.Errorf("NewDeliveryFee = %s, want 4.50", applied.NewDeliveryFee)
	}
}

func TestApplyDiscountDoesNotMutateCampaign(t *testing.T) {
	c := testCampaign()
	before := c.TotalSpent

	_ = ApplyDiscount(c, decimal.NewFromInt(200), decimal.NewFromInt(20))

	if !c.TotalSpent.Equal(before) {
		t.Errorf("TotalSpent changed from %s to %s", before, c.TotalSpent)
	}
}

func TestVerdictString(t *testing.T) {
	verdicts := map[EligibilityVerdict]string{
		VerdictEligible:            "eligible",
		VerdictNotActive:           "not_active",
		VerdictNotTargeted:         "not_targeted",
		VerdictDailyLimitReached:   "daily_limit_reached",
		VerdictThresholdNotMet:     "threshold_not_met",
		VerdictUnknownDiscountType: "unknown_discount_type",
	}
	for v, want := range verdicts {
		if v.String() != want {
			t.Errorf("String() = %q, want %q", v.String(), want)
		}
	}
}
