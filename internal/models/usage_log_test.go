package models

import (
	"testing"
	"time"
)

func TestUsageDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"midday utc",
			time.Date(2026, 8, 15, 12, 30, 45, 123, time.UTC),
			time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"just before midnight",
			time.Date(2026, 8, 15, 23, 59, 59, 0, time.UTC),
			time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"midnight starts a new day",
			time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			"local calendar date, not utc",
			time.Date(2026, 8, 16, 0, 30, 0, 0, loc), // still Aug 15 in UTC
			time.Date(2026, 8, 16, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UsageDate(tt.now); !got.Equal(tt.want) {
				t.Errorf("UsageDate(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
