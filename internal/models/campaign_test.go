package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCampaignIsActive(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		totalSpent string
		budget     string
		now        time.Time
		want       bool
	}{
		{"inside window", "0", "500", time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), true},
		{"at start", "0", "500", start, true},
		{"at end", "0", "500", end, true},
		{"before start", "0", "500", start.Add(-time.Second), false},
		{"after end", "0", "500", end.Add(time.Second), false},
		{"spent equals budget", "500", "500", time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), false},
		{"spent over budget", "500.01", "500", time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), false},
		{"spent just under budget", "499.99", "500", time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Campaign{
				StartDate:  start,
				EndDate:    end,
				Budget:     decimal.RequireFromString(tt.budget),
				TotalSpent: decimal.RequireFromString(tt.totalSpent),
			}
			if got := c.IsActive(tt.now); got != tt.want {
				t.Errorf("IsActive(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestIsValidDiscountType(t *testing.T) {
	valid := []string{DiscountTypeCart, DiscountTypeDelivery}
	for _, v := range valid {
		if !IsValidDiscountType(v) {
			t.Errorf("IsValidDiscountType(%q) = false, want true", v)
		}
	}
	invalid := []string{"", "percentage", "CART", "loyalty"}
	for _, v := range invalid {
		if IsValidDiscountType(v) {
			t.Errorf("IsValidDiscountType(%q) = true, want false", v)
		}
	}
}
