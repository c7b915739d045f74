package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/config"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaMilestonePublisher emits streak milestones as JSON records keyed by
// habit ID, so every habit's milestones stay ordered within one partition.
type KafkaMilestonePublisher struct {
	writer  messageWriter
	timeout time.Duration
}

func NewKafkaMilestonePublisher(cfg config.KafkaConfig) *KafkaMilestonePublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.MilestoneTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return newKafkaMilestonePublisher(writer)
}

func newKafkaMilestonePublisher(writer messageWriter) *KafkaMilestonePublisher {
	return &KafkaMilestonePublisher{
		writer:  writer,
		timeout: 5 * time.Second,
	}
}

func (p *KafkaMilestonePublisher) Publish(ctx context.Context, m domain.Milestone) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode milestone: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(m.HabitID),
		Value: payload,
		Time:  m.ReachedAt,
	})
	if err != nil {
		return fmt.Errorf("publish milestone: %w", err)
	}

	log.Printf("[KAFKA] Milestone %d for habit %s published", m.Streak, m.HabitID)
	return nil
}

func (p *KafkaMilestonePublisher) Close() error {
	return p.writer.Close()
}
