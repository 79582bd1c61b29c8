package location

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
	"liyu1981.xyz/altitude-guard/pkg/common"
	"liyu1981.xyz/altitude-guard/pkg/models"
)

const subscribeTimeout = 10 * time.Second

// Subscriber is the part of mqtt.Client the location bridge needs.
type Subscriber interface {
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// FixHandler decodes JSON fixes from the location topic into latest.
// Malformed payloads are logged and dropped.
func FixHandler(latest *Latest) mqtt.MessageHandler {
	logger := common.GetCategoryLogger(common.LoggerNameMqttBridge, common.LoggerCategoryLocation)

	return func(_ mqtt.Client, msg mqtt.Message) {
		var fix models.Fix
		if err := json.Unmarshal(msg.Payload(), &fix); err != nil {
			logger.Warn("Dropping undecodable fix", zap.String("topic", msg.Topic()), zap.Error(err))
			return
		}
		if err := latest.Push(fix); err != nil {
			logger.Warn("Dropping invalid fix", zap.String("topic", msg.Topic()), zap.Error(err))
			return
		}
		logger.Debug("Fix received", zap.String("topic", msg.Topic()))
	}
}

func SubscribeMQTT(client Subscriber, topic string, latest *Latest) error {
	token := client.Subscribe(topic, 1, FixHandler(latest))
	if !token.WaitTimeout(subscribeTimeout) {
		return fmt.Errorf("subscribe %s: timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}

	common.GetCategoryLogger(common.LoggerNameMqttBridge, common.LoggerCategoryLocation).
		Info("Subscribed to location topic", zap.String("topic", topic))
	return nil
}
