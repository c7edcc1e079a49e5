package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/sirupsen/logrus"
)

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
	logger   *logrus.Logger
}

// NewProducer creates a new NSQ producer connected to one nsqd
func NewProducer(address string, logger *logrus.Logger) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	// Ping the NSQ daemon to ensure connectivity
	if err := producer.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	producer.SetLogger(nil, nsq.LogLevelError)

	return &Producer{producer: producer, logger: logger}, nil
}

// Publish sends raw message bytes to the specified topic. The key
// identifies the message stream for logging; NSQ itself carries no
// partition keys, ordering per key is handled by the payload contract.
func (p *Producer) Publish(topic, key string, body []byte) error {
	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"topic": topic,
		"key":   key,
	}).Debug("Published message")
	return nil
}

// PublishJSON marshals a message and publishes it to the specified topic
func (p *Producer) PublishJSON(topic, key string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return p.Publish(topic, key, body)
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
