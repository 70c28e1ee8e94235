package notify

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStreamPublisher_Publish(t *testing.T) {
	_, client := setupTestRedis(t)
	publisher := NewRedisStreamPublisher(client, "gtm:test")
	ctx := context.Background()

	workspaceID := uuid.New()
	listID := uuid.NewString()
	err := publisher.Publish(ctx, Event{
		Type:        EventListMembershipUpdated,
		WorkspaceID: workspaceID,
		ListID:      listID,
		Op:          "add",
		Version:     2,
	})
	require.NoError(t, err)

	messages, err := client.XRange(ctx, "gtm:test", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)

	values := messages[0].Values
	assert.Equal(t, string(EventListMembershipUpdated), values["type"])
	assert.Equal(t, workspaceID.String(), values["workspace"])

	var decoded Event
	require.NoError(t, json.Unmarshal([]byte(values["data"].(string)), &decoded))
	assert.Equal(t, listID, decoded.ListID)
	assert.Equal(t, int64(2), decoded.Version)
	assert.False(t, decoded.OccurredAt.IsZero())
}

func TestRedisStreamPublisher_ConnectionLost(t *testing.T) {
	mr, client := setupTestRedis(t)
	publisher := NewRedisStreamPublisher(client, "gtm:test")
	mr.Close()

	err := publisher.Publish(context.Background(), Event{Type: EventListDeleted})
	assert.ErrorContains(t, err, "failed to publish list.deleted")
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	_ = client.Close()

	_, err = NewRedisClient(context.Background(), "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}

func TestLogPublisher_NeverFails(t *testing.T) {
	publisher := NewLogPublisher()
	assert.NoError(t, publisher.Publish(context.Background(), Event{Type: EventListSyncFailed, Error: "timeout"}))
	assert.NoError(t, publisher.Publish(context.Background(), Event{Type: EventEntityCreated}))
}
