package logger

import (
	"bytes"
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with the console format shared by the CLI and the
// viewer. A buffered logger keeps every line in memory so it can be shown
// next to the diagram.
type ZapLogger struct {
	log    *zap.Logger
	logBuf *bytes.Buffer
	Logs   []string
}

type config struct {
	level zapcore.Level
	color bool
}

type Option func(*config)

// WithLevel sets the minimum level written.
func WithLevel(level zapcore.Level) Option {
	return func(c *config) { c.level = level }
}

// WithoutColor disables ANSI level colors.
func WithoutColor() Option {
	return func(c *config) { c.color = false }
}

// New writes to w.
func New(w io.Writer, opts ...Option) *ZapLogger {
	return newLogger(zapcore.AddSync(w), nil, opts)
}

// NewBuffered keeps the log in memory; see Logs and ClearLogs.
func NewBuffered(opts ...Option) *ZapLogger {
	logBuf := &bytes.Buffer{}
	return newLogger(zapcore.AddSync(logBuf), logBuf, opts)
}

// Nop discards everything.
func Nop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop()}
}

func newLogger(ws zapcore.WriteSyncer, logBuf *bytes.Buffer, opts []Option) *ZapLogger {
	c := config{level: zapcore.InfoLevel, color: true}
	for _, opt := range opts {
		opt(&c)
	}

	encodeLevel := zapcore.CapitalLevelEncoder
	if c.color {
		encodeLevel = colorLevelEncoder
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})

	core := zapcore.NewCore(encoder, ws, c.level)
	log := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	return &ZapLogger{
		log:    log,
		logBuf: logBuf,
	}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // Cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // Green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // Yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // Red
	default:
		colorCode = "\033[0m"
	}
	enc.AppendString(colorCode + level.CapitalString() + "\033[0m")
}

// Zap exposes the underlying logger.
func (z *ZapLogger) Zap() *zap.Logger {
	return z.log
}

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

// UpdateLogs refreshes Logs from the buffer as a single HTML block.
func (z *ZapLogger) UpdateLogs() {
	if z.logBuf == nil {
		return
	}
	z.Logs = []string{ansiToHTML(z.logBuf.String())}
}

func (z *ZapLogger) ClearLogs() {
	if z.logBuf != nil {
		z.logBuf.Reset()
	}
	z.Logs = nil
}

func (z *ZapLogger) Debug(msg string, fields ...zap.Field) {
	z.log.Debug(msg, fields...)
}

func (z *ZapLogger) Info(msg string, fields ...zap.Field) {
	z.log.Info(msg, fields...)
}

func (z *ZapLogger) Warn(msg string, fields ...zap.Field) {
	z.log.Warn(msg, fields...)
}

func (z *ZapLogger) Error(msg string, fields ...zap.Field) {
	z.log.Error(msg, fields...)
}
