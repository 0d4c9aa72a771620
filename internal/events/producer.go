package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// TopicCoursePurchased receives one event per recorded course purchase.
const TopicCoursePurchased = "course.purchased"

const writeTimeout = 5 * time.Second

// CoursePurchased is the payload published after a purchase is persisted.
type CoursePurchased struct {
	UserID      string    `json:"user_id"`
	CourseID    string    `json:"course_id"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// Producer publishes purchase events to Kafka. Publishing is best effort: the
// HTTP response contract does not change when the broker is down, so failures
// are logged and swallowed. A nil Producer is valid and publishes nothing.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a producer for the given brokers, or nil when none are
// configured.
func NewProducer(brokers []string) *Producer {
	if len(brokers) == 0 {
		return nil
	}
	return &Producer{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        TopicCoursePurchased,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}}
}

// PublishCoursePurchased emits a purchase event keyed by course id.
func (p *Producer) PublishCoursePurchased(ctx context.Context, event CoursePurchased) {
	if p == nil || p.writer == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("events: marshal course.purchased: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.CourseID),
		Value: payload,
	}); err != nil {
		log.Printf("events: publish course.purchased: %v", err)
	}
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
