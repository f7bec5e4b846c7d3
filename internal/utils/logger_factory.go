package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelDebugStringConstant           = "debug"
	logLevelInfoStringConstant            = "info"
	logLevelWarnStringConstant            = "warn"
	logLevelErrorStringConstant           = "error"
	logFormatStructuredStringConstant     = "structured"
	logFormatConsoleStringConstant        = "console"
	unsupportedLogLevelMessageConstant    = "unsupported log level"
	unsupportedLogFormatMessageConstant   = "unsupported log format"
	unsupportedValueErrorTemplateConstant = "%w: %s"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants. Structured emits JSON lines; console emits
// level and message only.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
)

// ErrUnsupportedLogLevel indicates an unknown log level.
var ErrUnsupportedLogLevel = errors.New(unsupportedLogLevelMessageConstant)

// ErrUnsupportedLogFormat indicates an unknown log format.
var ErrUnsupportedLogFormat = errors.New(unsupportedLogFormatMessageConstant)

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

// LogLevelChoices lists the accepted log level values.
func LogLevelChoices() []string {
	return []string{logLevelDebugStringConstant, logLevelInfoStringConstant, logLevelWarnStringConstant, logLevelErrorStringConstant}
}

// LogFormatChoices lists the accepted log format values.
func LogFormatChoices() []string {
	return []string{logFormatStructuredStringConstant, logFormatConsoleStringConstant}
}

// LoggerFactory builds zap.Logger instances writing to a shared sink.
type LoggerFactory struct {
	output zapcore.WriteSyncer
}

// NewLoggerFactory constructs a factory whose loggers write to standard error.
func NewLoggerFactory() *LoggerFactory {
	return NewLoggerFactoryWithOutput(zapcore.Lock(os.Stderr))
}

// NewLoggerFactoryWithOutput constructs a factory whose loggers write to output.
func NewLoggerFactoryWithOutput(output zapcore.WriteSyncer) *LoggerFactory {
	if output == nil {
		output = zapcore.Lock(os.Stderr)
	}
	return &LoggerFactory{output: output}
}

// CreateLogger produces a zap.Logger honoring the requested log level and format.
// Values are matched case-insensitively.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	normalizedLevel := LogLevel(strings.ToLower(strings.TrimSpace(string(requestedLogLevel))))
	zapLogLevel, levelExists := logLevelMapping[normalizedLevel]
	if !levelExists {
		return nil, fmt.Errorf(unsupportedValueErrorTemplateConstant, ErrUnsupportedLogLevel, requestedLogLevel)
	}

	var encoder zapcore.Encoder
	switch LogFormat(strings.ToLower(strings.TrimSpace(string(requestedLogFormat)))) {
	case LogFormatStructured:
		encoderConfiguration := zap.NewProductionEncoderConfig()
		encoderConfiguration.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfiguration)
	case LogFormatConsole:
		encoderConfiguration := zap.NewDevelopmentEncoderConfig()
		encoderConfiguration.TimeKey = ""
		encoderConfiguration.CallerKey = ""
		encoderConfiguration.NameKey = ""
		encoderConfiguration.StacktraceKey = ""
		encoder = zapcore.NewConsoleEncoder(encoderConfiguration)
	default:
		return nil, fmt.Errorf(unsupportedValueErrorTemplateConstant, ErrUnsupportedLogFormat, requestedLogFormat)
	}

	core := zapcore.NewCore(encoder, factory.output, zap.NewAtomicLevelAt(zapLogLevel))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
