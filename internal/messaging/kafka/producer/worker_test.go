package producer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	kafkaMock "go-payroll/internal/messaging/kafka/mock"
	"go-payroll/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failTopic: events.PayslipRequestedTopic}

	pending := []kafka.OutboxEvent{
		{ID: "evt-1", RequestID: "req-1", AggregateType: "payroll", AggregateID: "p-1", EventType: events.PayrollGeneratedEventType, Topic: events.PayrollGeneratedTopic, Payload: []byte(`{}`)},
		{ID: "evt-2", AggregateType: "payroll", AggregateID: "p-2", EventType: events.PayslipRequestedEventType, Topic: events.PayslipRequestedTopic, Payload: []byte(`{}`)},
	}

	repo.EXPECT().ClaimPending(gomock.Any(), 50, time.Minute).Return(pending, nil)
	repo.EXPECT().MarkSent(gomock.Any(), "evt-1").Return(nil)
	repo.EXPECT().MarkFailed(gomock.Any(), "evt-2", "broker unavailable").Return(nil)

	res, err := producer.ProcessPendingEvents(context.Background(), repo, writer, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, producer.BatchResult{Claimed: 2, Sent: 1, Failed: 1}, res)
	require.Len(t, writer.written, 1)

	msg := writer.written[0]
	assert.Equal(t, "p-1", string(msg.Key))
	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, events.PayrollGeneratedEventType, headers["event_type"])
	assert.Equal(t, "req-1", headers["request_id"])
}

func TestProcessPendingEvents_LastAttemptIsDead(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failTopic: events.PayrollGeneratedTopic}

	repo.EXPECT().ClaimPending(gomock.Any(), 50, time.Minute).Return([]kafka.OutboxEvent{
		{ID: "evt-9", AggregateID: "p-9", EventType: events.PayrollGeneratedEventType, Topic: events.PayrollGeneratedTopic, Payload: []byte(`{}`), RetryCount: kafka.MaxDeliveryAttempts - 1},
	}, nil)
	repo.EXPECT().MarkFailed(gomock.Any(), "evt-9", "broker unavailable").Return(nil)

	res, err := producer.ProcessPendingEvents(context.Background(), repo, writer, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 1, res.Dead)
	assert.Equal(t, 0, res.Sent)
}

func TestProcessPendingEvents_MarkSentErrorNotCounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)

	repo.EXPECT().ClaimPending(gomock.Any(), 50, time.Minute).Return([]kafka.OutboxEvent{
		{ID: "evt-1", AggregateID: "p-1", EventType: events.PayrollGeneratedEventType, Topic: events.PayrollGeneratedTopic, Payload: []byte(`{}`)},
	}, nil)
	repo.EXPECT().MarkSent(gomock.Any(), "evt-1").Return(errors.New("db down"))

	res, err := producer.ProcessPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, producer.BatchResult{Claimed: 1}, res)
}

func TestProcessPendingEvents_ClaimError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().ClaimPending(gomock.Any(), 50, time.Minute).Return(nil, errors.New("db down"))

	_, err := producer.ProcessPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop())

	assert.Error(t, err)
}
