package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"fieldops/internal/usecase/interfaces"
)

// RedisStreamNotifier appends notifications to a Redis stream for the push
// delivery workers. Each entry carries the JSON notification under "data".
type RedisStreamNotifier struct {
	client *redis.Client
	stream string
	maxLen int64
}

var _ interfaces.INotifier = (*RedisStreamNotifier)(nil)

func NewRedisStreamNotifier(client *redis.Client, stream string) *RedisStreamNotifier {
	return &RedisStreamNotifier{client: client, stream: stream, maxLen: 100000}
}

func (n *RedisStreamNotifier) Notify(ctx context.Context, msg interfaces.Notification) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	err = n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: n.stream,
		MaxLen: n.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"kind":      msg.Kind,
			"tenant_id": msg.TenantID,
			"data":      string(data),
			"timestamp": msg.CreatedAt.Unix(),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", n.stream, err)
	}
	return nil
}
