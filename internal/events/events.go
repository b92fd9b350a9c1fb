package events

import "context"

// Event types
const (
	EventCampaignRedeemed = "campaign_redeemed"
	EventCampaignCreated  = "campaign_created"
	EventCampaignDeleted  = "campaign_deleted"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
