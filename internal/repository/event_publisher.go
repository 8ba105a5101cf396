package repository

import (
	"context"

	"SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"
	pkgkafka "SmartInvest/pkg/kafka"
	applogger "SmartInvest/pkg/logger"
)

// KafkaEventPublisher emits alert events keyed by symbol so a symbol's events stay ordered.
type KafkaEventPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaEventPublisher(p *pkgkafka.Producer, topic string) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: p, topic: topic}
}

func (k *KafkaEventPublisher) PublishAlert(ctx context.Context, ev *models.AlertEvent) error {
	return k.producer.Publish(ctx, k.topic, []byte(ev.Symbol), ev)
}

// Close is a no-op; the producer is closed by the application.
func (k *KafkaEventPublisher) Close() error { return nil }

// LogEventPublisher is used when Kafka is disabled.
type LogEventPublisher struct {
	log *applogger.Logger
}

func NewLogEventPublisher(l *applogger.Logger) *LogEventPublisher {
	return &LogEventPublisher{log: l}
}

func (p *LogEventPublisher) PublishAlert(_ context.Context, ev *models.AlertEvent) error {
	p.log.Info("alert triggered",
		applogger.String("event_id", ev.ID),
		applogger.String("symbol", ev.Symbol),
		applogger.String("owner", ev.Owner),
		applogger.Float64("target_price", ev.TargetPrice),
		applogger.Float64("short_term_prediction", ev.ShortTermPrediction),
	)
	return nil
}

func (p *LogEventPublisher) Close() error { return nil }

var (
	_ domrepo.EventPublisher = (*KafkaEventPublisher)(nil)
	_ domrepo.EventPublisher = (*LogEventPublisher)(nil)
)
