package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/sirupsen/logrus"
)

// MessageHandler processes one NSQ message body. Returning an error
// requeues the message for redelivery; returning nil finishes it.
type MessageHandler func(body []byte) error

// ConsumerConfig holds consumer tuning
type ConsumerConfig struct {
	Topic        string
	Channel      string
	NSQDAddress  string
	LookupdAddrs []string
	MaxInFlight  int
}

// Consumer handles consuming messages from one NSQ topic/channel
type Consumer struct {
	consumer *nsq.Consumer
	logger   *logrus.Logger
}

// NewConsumer creates a consumer and connects it to nsqd or lookupd
func NewConsumer(cfg ConsumerConfig, handler MessageHandler, logger *logrus.Logger) (*Consumer, error) {
	config := nsq.NewConfig()
	if cfg.MaxInFlight > 0 {
		config.MaxInFlight = cfg.MaxInFlight
	}

	consumer, err := nsq.NewConsumer(cfg.Topic, cfg.Channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}

	consumer.SetLogger(nil, nsq.LogLevelError)

	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		message.Touch()

		if err := handler(message.Body); err != nil {
			logger.WithFields(logrus.Fields{
				"topic":    cfg.Topic,
				"attempts": message.Attempts,
			}).WithError(err).Error("Error processing message, requeueing")
			// Returning the error requeues the message
			return err
		}

		message.Finish()
		return nil
	}))

	if len(cfg.LookupdAddrs) > 0 {
		if err := consumer.ConnectToNSQLookupds(cfg.LookupdAddrs); err != nil {
			return nil, fmt.Errorf("failed to connect to NSQ lookupd: %w", err)
		}
	} else {
		if err := consumer.ConnectToNSQD(cfg.NSQDAddress); err != nil {
			return nil, fmt.Errorf("failed to connect to NSQ daemon: %w", err)
		}
	}

	return &Consumer{consumer: consumer, logger: logger}, nil
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
