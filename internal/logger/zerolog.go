package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ZerologAdapter carries the editor's log stream. Every event is tagged
// with the emitting component (Application, Handlers, GUIManager, ...).
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerolog writes structured JSON lines to writer, filtered at level.
// Tests feed it a buffer.
func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewConsoleLogger builds the stdout logger for an editor run. The level
// name comes from the config file; LOG_LEVEL and DEBUG=1 override it.
func NewConsoleLogger(levelName string) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	return NewZerolog(consoleWriter, LevelFromEnv(levelName))
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Debug(), component, message, fields)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Info(), component, message, fields)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Warn(), component, message, fields)
}

// Error keeps a fixed message so failures group in the stream; the cause
// rides in the error field.
func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	z.emit(z.logger.Error().Err(err), component, "operation failed", fields)
}

func (z *ZerologAdapter) emit(event *zerolog.Event, component, message string, fields map[string]interface{}) {
	event = event.Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}
