package cli

import (
	"context"

	"github.com/0x0FACED/go-fortune/pkg/logger"
)

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *logger.ZapLogger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by the root command, or a
// no-op logger when there is none.
func loggerFromContext(ctx context.Context) *logger.ZapLogger {
	if l, ok := ctx.Value(loggerKey).(*logger.ZapLogger); ok {
		return l
	}
	return logger.Nop()
}
