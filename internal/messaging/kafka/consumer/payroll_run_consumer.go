package consumer

import (
	"context"
	"encoding/json"

	"github.com/hrh2/erp/internal/events"
	"github.com/hrh2/erp/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollRunRequested executes monthly payroll runs requested
// over Kafka. The run itself never fails as a whole, so every decoded
// message is committed; per-employee outcomes are logged from the
// engine's run report.
func ConsumePayrollRunRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_run")
	log.Info("payroll run consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll run consumer stopped")
				return
			}
			log.Error("fetch payroll run message failed", zap.Error(err))
			continue
		}

		var event events.PayrollRunRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll run event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		report, err := payrollService.GenerateForMonth(ctx, event.Month, event.Year)
		if err != nil {
			log.Error("payroll run failed",
				zap.Int("month", event.Month),
				zap.Int("year", event.Year),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll run message failed", zap.Error(err))
			continue
		}

		log.Info("payroll run completed",
			zap.Int("month", event.Month),
			zap.Int("year", event.Year),
			zap.Int("created", len(report.Created)),
			zap.Int("items", len(report.Items)),
		)
	}
}
