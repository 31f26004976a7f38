package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"fieldops/internal/config"
	"fieldops/internal/usecase/interfaces"
)

const publishTimeout = 5 * time.Second

// Publisher is the part of mqtt.Client the notifier uses.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTNotifier publishes notifications to
// <prefix>/<tenant_id>/notifications/<kind> at QoS 1.
type MQTTNotifier struct {
	client Publisher
	prefix string
}

var _ interfaces.INotifier = (*MQTTNotifier)(nil)

func NewMQTTNotifier(client Publisher, topicPrefix string) *MQTTNotifier {
	return &MQTTNotifier{client: client, prefix: topicPrefix}
}

// ConnectMQTT dials the broker with auto-reconnect and a clean session.
func ConnectMQTT(cfg config.MQTTConfig) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect to MQTT broker: %w", token.Error())
	}
	return client, nil
}

func (n *MQTTNotifier) Topic(msg interfaces.Notification) string {
	return fmt.Sprintf("%s/%s/notifications/%s", n.prefix, msg.TenantID, msg.Kind)
}

func (n *MQTTNotifier) Notify(ctx context.Context, msg interfaces.Notification) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	topic := n.Topic(msg)
	token := n.client.Publish(topic, 1, false, payload)

	timeout := publishTimeout
	if dl, ok := ctx.Deadline(); ok {
		timeout = time.Until(dl)
	}
	if !token.WaitTimeout(timeout) {
		return fmt.Errorf("publish to %s: timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}
