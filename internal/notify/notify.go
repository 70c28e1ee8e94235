package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType names a durable outcome reported to the client
type EventType string

const (
	EventEntityCreated          EventType = "entity.created"
	EventListMembershipUpdated  EventType = "list.membership_updated"
	EventListMembershipRejected EventType = "list.membership_failed"
	EventListSyncFailed         EventType = "list.sync_failed"
	EventListDeleted            EventType = "list.deleted"
)

// Event is the outcome of a write. Writes complete even when the request that
// started them is cancelled, so the result is delivered here as well.
type Event struct {
	Type        EventType `json:"type"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	UserID      uuid.UUID `json:"user_id"`
	EntityKind  string    `json:"entity_kind,omitempty"`
	EntityID    string    `json:"entity_id,omitempty"`
	ListID      string    `json:"list_id,omitempty"`
	Op          string    `json:"op,omitempty"`
	Version     int64     `json:"version,omitempty"`
	Error       string    `json:"error,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher delivers events to a notification channel
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
