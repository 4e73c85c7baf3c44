package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka/consumer"
	payperioderrors "go-payroll/internal/payperiod/errors"
	"go-payroll/internal/payslip"
	payslipMock "go-payroll/internal/payslip/mock"
	"go-payroll/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// scriptedReader replays msgs and then cancels the consumer.
type scriptedReader struct {
	msgs      []kafkago.Message
	cancel    context.CancelFunc
	committed []kafkago.Message
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *scriptedReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func payslipMessage(t *testing.T, employeeID, periodID string) kafkago.Message {
	t.Helper()
	body, err := json.Marshal(events.PayslipRequestedEvent{
		EventType:   events.PayslipRequestedEventType,
		PayrollID:   "payroll-" + employeeID,
		EmployeeID:  employeeID,
		PayPeriodID: periodID,
	})
	assert.NoError(t, err)
	return kafkago.Message{
		Topic:   events.PayslipRequestedTopic,
		Value:   body,
		Headers: []kafkago.Header{{Key: "request_id", Value: []byte("req-42")}},
	}
}

func TestConsumePayslipRequested(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := payslipMock.NewMockService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ok := payslipMessage(t, "emp-1", "period-1")
	rejected := payslipMessage(t, "emp-2", "period-1")
	transient := payslipMessage(t, "emp-3", "period-1")
	garbage := kafkago.Message{Value: []byte("{")}

	svc.EXPECT().GeneratePayslip(gomock.Any(), "emp-1", "period-1").
		DoAndReturn(func(ctx context.Context, _, _ string) (payslip.PayslipResponse, error) {
			assert.Equal(t, "req-42", contextutil.GetRequestID(ctx))
			return payslip.PayslipResponse{ID: "slip-1"}, nil
		})
	svc.EXPECT().GeneratePayslip(gomock.Any(), "emp-2", "period-1").
		Return(payslip.PayslipResponse{}, payperioderrors.ErrPayPeriodNotFound)
	svc.EXPECT().GeneratePayslip(gomock.Any(), "emp-3", "period-1").
		Return(payslip.PayslipResponse{}, errors.New("connection reset"))

	reader := &scriptedReader{msgs: []kafkago.Message{ok, rejected, transient, garbage}, cancel: cancel}
	consumer.ConsumePayslipRequested(ctx, reader, svc, zap.NewNop())

	// The transient failure stays uncommitted for redelivery.
	assert.Len(t, reader.committed, 3)
	assert.Equal(t, ok.Value, reader.committed[0].Value)
	assert.Equal(t, rejected.Value, reader.committed[1].Value)
	assert.Equal(t, garbage.Value, reader.committed[2].Value)
}
