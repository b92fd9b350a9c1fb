package services

import "errors"

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrNotEligible         = errors.New("campaign not eligible")
	ErrUsageLimitExceeded  = errors.New("daily usage limit exceeded")
	ErrConcurrencyConflict = errors.New("redemption lost a concurrent update, retry")
)
