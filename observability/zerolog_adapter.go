package observability

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ZerologAdapter wraps a zerolog.Logger to implement the Logger interface,
// for deployments whose ambient logging pipeline is already zerolog-based.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new ZerologAdapter from a zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Debug implements Logger.
func (z *ZerologAdapter) Debug(msg string, attrs ...any) {
	z.log(z.logger.Debug(), msg, attrs...)
}

// Info implements Logger.
func (z *ZerologAdapter) Info(msg string, attrs ...any) {
	z.log(z.logger.Info(), msg, attrs...)
}

// Warn implements Logger.
func (z *ZerologAdapter) Warn(msg string, attrs ...any) {
	z.log(z.logger.Warn(), msg, attrs...)
}

// Error implements Logger.
func (z *ZerologAdapter) Error(msg string, attrs ...any) {
	z.log(z.logger.Error(), msg, attrs...)
}

// With implements Logger.
func (z *ZerologAdapter) With(attrs ...any) Logger {
	ctx := z.logger.With()
	for i := 0; i+1 < len(attrs); i += 2 {
		key, ok := attrs[i].(string)
		if !ok {
			key = fmt.Sprint(attrs[i])
		}
		ctx = ctx.Interface(key, attrs[i+1])
	}
	return &ZerologAdapter{logger: ctx.Logger()}
}

func (z *ZerologAdapter) log(event *zerolog.Event, msg string, attrs ...any) {
	for i := 0; i+1 < len(attrs); i += 2 {
		key, ok := attrs[i].(string)
		if !ok {
			key = fmt.Sprint(attrs[i])
		}
		event = event.Interface(key, attrs[i+1])
	}
	event.Msg(msg)
}

// Ensure ZerologAdapter implements Logger at compile time.
var _ Logger = (*ZerologAdapter)(nil)
