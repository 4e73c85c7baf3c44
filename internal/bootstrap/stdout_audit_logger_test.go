package bootstrap_test

import (
	"context"
	"testing"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	audit.Log(ctx, bootstrap.AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Payroll API is shutting down",
		Meta:    map[string]any{"signal": "terminated"},
	})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "audit", entries[0].LoggerName)
		fields := entries[0].ContextMap()
		assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
		assert.Equal(t, "req-1", fields["request_id"])
		assert.NotEmpty(t, fields["timestamp"])
	}
}
