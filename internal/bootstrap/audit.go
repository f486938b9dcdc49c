package bootstrap

import (
	"context"
	"time"

	"go-hrpms/internal/shared/contextutil"

	"go.uber.org/zap"
)

// AuditLog is a process-level event worth keeping apart from request logs.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

// ZapAuditLogger writes audit entries through a named zap logger.
type ZapAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewZapAuditLogger(logger *zap.Logger) *ZapAuditLogger {
	if logger == nil {
		logger = zap.L()
	}
	return &ZapAuditLogger{logger: logger.Named("audit"), now: time.Now}
}

func (l *ZapAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	if len(entry.Meta) > 0 {
		fields = append(fields, zap.Any("meta", entry.Meta))
	}
	l.logger.Info("audit event", fields...)
}
