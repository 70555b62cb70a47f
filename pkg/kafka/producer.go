package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes store events to Kafka. It has the same Publish shape as
// the SNS client so services can use either.
type Producer struct {
	writer  messageWriter
	brokers []string
	logger  *zap.Logger
}

func NewProducer(brokers []string, logger *zap.Logger) *Producer {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}
	logger.Info("Kafka producer initialized", zap.Strings("brokers", brokers))
	return &Producer{writer: w, brokers: brokers, logger: logger}
}

// Publish writes message to topic.
func (p *Producer) Publish(ctx context.Context, topic string, message []byte) error {
	if topic == "" {
		return fmt.Errorf("empty topic")
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Topic: topic, Value: message}); err != nil {
		return fmt.Errorf("kafka publish to %s: %w", topic, err)
	}
	return nil
}

func (p *Producer) Close() error {
	p.logger.Info("Closing Kafka producer", zap.Strings("brokers", p.brokers))
	return p.writer.Close()
}
