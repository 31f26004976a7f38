package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/usecase/interfaces"
)

func sampleNotification() interfaces.Notification {
	return interfaces.Notification{
		Kind:        interfaces.NotificationJobAssigned,
		TenantID:    "tenant-1",
		RecipientID: "tech-7",
		EntityType:  "job",
		EntityID:    "job-1",
		Title:       "Job JOB-000001 assigned",
		CreatedAt:   time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestRedisStreamNotifier_Notify(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	n := NewRedisStreamNotifier(client, "fieldops:notifications")
	require.NoError(t, n.Notify(context.Background(), sampleNotification()))

	msgs, err := client.XRange(context.Background(), "fieldops:notifications", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	values := msgs[0].Values
	assert.Equal(t, interfaces.NotificationJobAssigned, values["kind"])
	assert.Equal(t, "tenant-1", values["tenant_id"])

	var decoded interfaces.Notification
	require.NoError(t, json.Unmarshal([]byte(values["data"].(string)), &decoded))
	assert.Equal(t, "tech-7", decoded.RecipientID)
	assert.Equal(t, "job-1", decoded.EntityID)
}

func TestRedisStreamNotifier_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	err := NewRedisStreamNotifier(client, "s").Notify(context.Background(), sampleNotification())
	assert.Error(t, err)
}

type fakeToken struct {
	err      error
	complete bool
}

func (t *fakeToken) Wait() bool                     { return t.complete }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return t.complete }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type fakePublisher struct {
	topic   string
	qos     byte
	payload []byte
	token   *fakeToken
}

func (p *fakePublisher) Publish(topic string, qos byte, _ bool, payload interface{}) mqtt.Token {
	p.topic, p.qos = topic, qos
	p.payload, _ = payload.([]byte)
	return p.token
}

func TestMQTTNotifier_Notify(t *testing.T) {
	t.Run("publishes to tenant topic", func(t *testing.T) {
		pub := &fakePublisher{token: &fakeToken{complete: true}}
		n := NewMQTTNotifier(pub, "fieldops")

		require.NoError(t, n.Notify(context.Background(), sampleNotification()))
		assert.Equal(t, "fieldops/tenant-1/notifications/job.assigned", pub.topic)
		assert.Equal(t, byte(1), pub.qos)

		var decoded interfaces.Notification
		require.NoError(t, json.Unmarshal(pub.payload, &decoded))
		assert.Equal(t, "job-1", decoded.EntityID)
	})

	t.Run("broker error", func(t *testing.T) {
		pub := &fakePublisher{token: &fakeToken{complete: true, err: errors.New("not connected")}}
		err := NewMQTTNotifier(pub, "fieldops").Notify(context.Background(), sampleNotification())
		assert.ErrorContains(t, err, "not connected")
	})

	t.Run("timeout", func(t *testing.T) {
		pub := &fakePublisher{token: &fakeToken{complete: false}}
		err := NewMQTTNotifier(pub, "fieldops").Notify(context.Background(), sampleNotification())
		assert.ErrorContains(t, err, "timed out")
	})
}

func TestLogNotifier(t *testing.T) {
	assert.NoError(t, NewLogNotifier(nil).Notify(context.Background(), sampleNotification()))
}
