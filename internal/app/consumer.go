package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hrh2/erp/internal/deduction"
	"github.com/hrh2/erp/internal/employee"
	"github.com/hrh2/erp/internal/employment"
	"github.com/hrh2/erp/internal/events"
	"github.com/hrh2/erp/internal/messaging/kafka"
	"github.com/hrh2/erp/internal/messaging/kafka/consumer"
	"github.com/hrh2/erp/internal/notification"
	"github.com/hrh2/erp/internal/payroll"
	"github.com/hrh2/erp/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer executes payroll runs requested over Kafka until
// signalled.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	employeeRepo := employee.NewRepository(gormDB)
	employmentRepo := employment.NewRepository(gormDB)
	deductionRepo := deduction.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	employmentService := employment.NewService(sqlDB, employmentRepo)
	deductionService := deduction.NewService(sqlDB, deductionRepo)
	notificationService := notification.NewService(sqlDB, notificationRepo, outboxRepo)
	payrollService := payroll.NewService(
		sqlDB,
		payrollRepo,
		employmentService,
		deductionService,
		employeeRepo,
		notificationService,
	)

	reader := connection.NewKafkaReader(
		kafkaBroker,
		events.PayrollRunRequestedTopic,
		"erp-payroll-run",
	)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayrollRunRequested(ctx, reader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
