package notify

import (
	"context"

	"gtm-crm-backend/internal/logger"
)

// LogPublisher writes events to the application log. Used when Redis is not configured.
type LogPublisher struct{}

// NewLogPublisher creates a LogPublisher
func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

// Publish logs the event at info level, or warn level when it reports a failure
func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event":     string(event.Type),
		"workspace": event.WorkspaceID.String(),
		"entity_id": event.EntityID,
		"list_id":   event.ListID,
	})
	if event.Error != "" {
		log.WithField("error", event.Error).Warn("notification")
		return nil
	}
	log.Info("notification")
	return nil
}
