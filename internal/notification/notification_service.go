package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hrh2/erp/internal/events"
	"github.com/hrh2/erp/internal/messaging/kafka"
	notificationerrors "github.com/hrh2/erp/internal/notification/errors"
	"github.com/hrh2/erp/internal/payroll"
	"github.com/hrh2/erp/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const approvalBodyTemplate = "Dear %s,\nYour salary for %s from Government of Rwanda amounting to %s has been credited to your account %s successfully."

type Service interface {
	payroll.Notifier

	GetAll(ctx context.Context) ([]MessageResponse, error)
	GetByID(ctx context.Context, id string) (MessageResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]MessageResponse, error)
	GetByEmployeeAndMonthYear(ctx context.Context, employeeID, monthYear string) ([]MessageResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, logger: l}
}

// NotifyApproval records the notice and queues the approved event in
// one transaction. The worker ships the event to Kafka afterwards, so
// a broker outage delays delivery instead of losing it.
func (s *service) NotifyApproval(ctx context.Context, notice payroll.ApprovalNotice) error {
	employeeID, err := uuid.Parse(notice.EmployeeID)
	if err != nil {
		return notificationerrors.ErrInvalidEmployeeID
	}

	monthYear := fmt.Sprintf("%d/%d", notice.Month, notice.Year)
	body := fmt.Sprintf(
		approvalBodyTemplate,
		notice.FirstName,
		monthYear,
		notice.NetSalary.StringFixed(2),
		notice.EmployeeCode,
	)

	now := time.Now()
	msg := &Message{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Body:       body,
		MonthYear:  monthYear,
		SentAt:     now,
	}

	event := events.PayslipApprovedEvent{
		EventType:    "payslip.approved",
		PayslipID:    notice.PayslipID,
		EmployeeID:   notice.EmployeeID,
		EmployeeCode: notice.EmployeeCode,
		MonthYear:    monthYear,
		NetSalary:    notice.NetSalary.StringFixed(2),
		OccurredAt:   now,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, msg); err != nil {
		return mapRepositoryError(err)
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payslip",
		AggregateID:   notice.PayslipID,
		EventType:     event.EventType,
		Topic:         events.PayslipApprovedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("approval notice recorded",
		zap.String("message_id", msg.ID.String()),
		zap.String("employee_id", notice.EmployeeID),
		zap.String("month_year", monthYear),
	)

	return nil
}

func (s *service) GetAll(ctx context.Context) ([]MessageResponse, error) {
	msgs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(msgs), nil
}

func (s *service) GetByID(ctx context.Context, id string) (MessageResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return MessageResponse{}, notificationerrors.ErrInvalidMessageID
	}

	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return MessageResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*msg), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]MessageResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, notificationerrors.ErrInvalidEmployeeID
	}

	msgs, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(msgs), nil
}

func (s *service) GetByEmployeeAndMonthYear(
	ctx context.Context,
	employeeID, monthYear string,
) ([]MessageResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, notificationerrors.ErrInvalidEmployeeID
	}

	msgs, err := s.repo.FindByEmployeeAndMonthYear(ctx, employeeID, monthYear)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(msgs), nil
}

func mapToResponse(msg Message) MessageResponse {
	return MessageResponse{
		ID:         msg.ID.String(),
		EmployeeID: msg.EmployeeID.String(),
		Body:       msg.Body,
		MonthYear:  msg.MonthYear,
		SentAt:     msg.SentAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(msgs []Message) []MessageResponse {
	resp := make([]MessageResponse, len(msgs))
	for i, msg := range msgs {
		resp[i] = mapToResponse(msg)
	}
	return resp
}
