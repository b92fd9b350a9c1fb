package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type TokenRequest struct {
	APIKey      string `json:"api_key"`
	ServiceName string `json:"service_name,omitempty"`
}

type CreateCustomerRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UpdateCustomerRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type CreateCampaignRequest struct {
	Name                        string          `json:"name"`
	DiscountType                string          `json:"discount_type"` // cart / delivery
	DiscountAmount              decimal.Decimal `json:"discount_amount"`
	StartDate                   time.Time       `json:"start_date"`
	EndDate                     time.Time       `json:"end_date"`
	Budget                      decimal.Decimal `json:"budget"`
	UsageLimitPerCustomerPerDay int             `json:"usage_limit_per_customer_per_day"`
	TargetCustomerIDs           []string        `json:"target_customer_ids,omitempty"`
}

type UpdateCampaignRequest struct {
	Name                        string          `json:"name"`
	DiscountType                string          `json:"discount_type"`
	DiscountAmount              decimal.Decimal `json:"discount_amount"`
	StartDate                   time.Time       `json:"start_date"`
	EndDate                     time.Time       `json:"end_date"`
	Budget                      decimal.Decimal `json:"budget"`
	UsageLimitPerCustomerPerDay int             `json:"usage_limit_per_customer_per_day"`
	TargetCustomerIDs           []string        `json:"target_customer_ids,omitempty"`
}

type ApplyDiscountRequest struct {
	CustomerID  string          `json:"customer_id"`
	CartTotal   decimal.Decimal `json:"cart_total"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
}
