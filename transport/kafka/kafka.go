package kafka

import (
	"context"
	"petcare/config"
	infraKafka "petcare/infras/kafka"
	"petcare/infras/otel"
	"petcare/internal/domains/appointment/event"
	payrollService "petcare/internal/domains/payroll/service"
	"petcare/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer feeds appointment lifecycle events into the payroll service.
type Consumer struct {
	Config  *config.Config
	Client  infraKafka.Client
	Payroll payrollService.Payroll
	otel    otel.Otel
}

func New(cfg *config.Config, client infraKafka.Client, payroll payrollService.Payroll, otel otel.Otel) *Consumer {
	return &Consumer{
		Config:  cfg,
		Client:  client,
		Payroll: payroll,
		otel:    otel,
	}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	log.Info().
		Str("topic", c.Config.Kafka.Topics.Appointment).
		Str("group", c.Config.Kafka.ConsumerGroup).
		Msg("Starting payroll consumer.")

	return c.Client.Consume(ctx, c.Config.Kafka.ConsumerGroup, c.Config.Kafka.Topics.Appointment, c.Handle) //nolint:wrapcheck
}

// Handle records earnings for completed appointments. Other event types are acknowledged untouched,
// and undecodable payloads are dropped since retrying cannot fix them.
func (c *Consumer) Handle(ctx context.Context, msg kafkaGo.Message) error {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".payroll.Handle")
	defer scope.End()

	eventType := infraKafka.Header(msg, infraKafka.HeaderEventType)
	scope.SetAttribute("event.type", eventType)

	if eventType != string(event.TypeCompleted) {
		return nil
	}

	evt, err := infraKafka.Decode[event.Appointment](msg)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("failed to decode appointment event")

		return nil
	}

	if err := c.Payroll.RecordCompletion(ctx, evt); err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}
