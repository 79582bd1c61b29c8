package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"liyu1981.xyz/altitude-guard/pkg/models"
)

const publishTimeout = 5 * time.Second

// Publisher is the part of mqtt.Client the notifier needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTNotifier publishes alerts as JSON models.Notification to Topic, for
// the phone or a paired watch to pick up.
type MQTTNotifier struct {
	Client Publisher
	Topic  string
	Now    func() time.Time
}

func NewMQTTNotifier(client Publisher, topic string) *MQTTNotifier {
	return &MQTTNotifier{Client: client, Topic: topic, Now: time.Now}
}

func (n *MQTTNotifier) Notify(ctx context.Context, title string, body string, urgent bool) error {
	payload, err := json.Marshal(models.Notification{
		Title:     title,
		Body:      body,
		Urgent:    urgent,
		Timestamp: n.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}

	// at-least-once for urgent alerts only
	var qos byte
	if urgent {
		qos = 1
	}

	timeout := publishTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}

	token := n.Client.Publish(n.Topic, qos, false, payload)
	if !token.WaitTimeout(timeout) {
		return fmt.Errorf("publish %s: timed out", n.Topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", n.Topic, err)
	}
	return nil
}
