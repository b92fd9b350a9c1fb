package dto

import "github.com/shopspring/decimal"

type TokenResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type AppliedDiscountResponse struct {
	CampaignID      string          `json:"campaign_id"`
	DiscountType    string          `json:"discount_type"`
	DiscountApplied decimal.Decimal `json:"discount_applied"`
	NewCartTotal    decimal.Decimal `json:"new_cart_total"`
	NewDeliveryFee  decimal.Decimal `json:"new_delivery_fee"`
}
