package consumer

import (
	"context"
	"errors"
	"net/http"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageReader is the subset of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// messageContext carries the producing request's id into the handler so
// its logs can be joined with the API logs.
func messageContext(ctx context.Context, msg kafkago.Message) context.Context {
	if id := header(msg, "request_id"); id != "" {
		return contextutil.WithRequestID(ctx, id)
	}
	return ctx
}

// isPermanent reports errors a redelivery cannot fix.
func isPermanent(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError
}
