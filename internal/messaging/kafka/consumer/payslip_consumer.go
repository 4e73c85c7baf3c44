package consumer

import (
	"context"
	"encoding/json"

	"go-payroll/internal/events"
	"go-payroll/internal/payslip"

	"go.uber.org/zap"
)

// ConsumePayslipRequested turns payslip.requested events into payslips.
// Generation is idempotent per (employee, period), so redelivery is safe.
func ConsumePayslipRequested(
	ctx context.Context,
	reader MessageReader,
	payslipService payslip.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_requested")
	log.Info("payslip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip consumer stopped")
				return
			}
			log.Error("fetch payslip message failed", zap.Error(err))
			continue
		}

		var event events.PayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip.requested event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		msgCtx := messageContext(ctx, msg)
		resp, err := payslipService.GeneratePayslip(msgCtx, event.EmployeeID, event.PayPeriodID)
		if err != nil {
			if isPermanent(err) {
				log.Warn("payslip request rejected, skipping",
					zap.String("payroll_id", event.PayrollID),
					zap.String("employee_id", event.EmployeeID),
					zap.String("pay_period_id", event.PayPeriodID),
					zap.Error(err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("generate payslip failed",
				zap.String("payroll_id", event.PayrollID),
				zap.String("employee_id", event.EmployeeID),
				zap.String("pay_period_id", event.PayPeriodID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip message failed", zap.Error(err))
			continue
		}

		log.Info("payslip generated from event",
			zap.String("payslip_id", resp.ID),
			zap.String("payroll_id", event.PayrollID),
			zap.String("request_id", header(msg, "request_id")),
		)
	}
}
