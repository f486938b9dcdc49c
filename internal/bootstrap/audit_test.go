package bootstrap

import (
	"context"
	"testing"
	"time"

	"go-hrpms/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewZapAuditLogger(zap.New(core))
	l.now = func() time.Time { return time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC) }

	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	l.Log(ctx, AuditLog{Action: "SERVER_SHUTDOWN", Message: "bye", Meta: map[string]any{"signal": "terminated"}})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	fields := entry.ContextMap()
	assert.Equal(t, "2025-01-10T09:00:00Z", fields["timestamp"])
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Contains(t, fields, "meta")
}

func TestZapAuditLogger_OmitsEmptyMeta(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	NewZapAuditLogger(zap.New(core)).Log(context.Background(), AuditLog{Action: "SERVER_START"})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.NotContains(t, fields, "meta")
	assert.NotContains(t, fields, "request_id")
}
