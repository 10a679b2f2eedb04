package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// GlobalLogger describes a Logger that all packages may derive sub-loggers from. It writes unstructured output to
// standard error by default, since standard output is reserved for compiler output and diagnostics.
var GlobalLogger = NewLogger(zerolog.InfoLevel)

// Logger describes a custom logging object that can log events to any arbitrary channel in either structured or
// unstructured format.
type Logger struct {
	// level describes the log level
	level zerolog.Level

	// multiLogger describes a logger that will be used to output logs to any arbitrary channel(s).
	multiLogger zerolog.Logger

	// writers describes a list of io.Writer objects where log output will go. This writers list can be appended to.
	writers []io.Writer
}

// LogFormat describes what format to log in
type LogFormat string

const (
	// STRUCTURED describes that logging should be done in structured JSON format
	STRUCTURED LogFormat = "structured"
	// UNSTRUCTURED describes that logging should be done in an unstructured format
	UNSTRUCTURED LogFormat = "unstructured"
)

// StructuredLogInfo describes a key-value mapping that can be used to log structured data
type StructuredLogInfo map[string]any

// NewLogger will create a new Logger object with a specific log level that writes unstructured output to standard
// error. Additional writers may be added with AddWriter.
func NewLogger(level zerolog.Level) *Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
	writer.FormatTimestamp = func(i any) string {
		return ""
	}

	return &Logger{
		level:       level,
		multiLogger: zerolog.New(writer).Level(level),
		writers:     []io.Writer{os.Stderr},
	}
}

// NewSubLogger will create a new Logger with unique context in the form of a key-value pair. The expected use of this
// function is for each package to have their own unique logger so that parsing of logs is "grep-able" based on some key
func (l *Logger) NewSubLogger(key string, value string) *Logger {
	subLogger := l.multiLogger.With().Str(key, value).Logger()
	return &Logger{
		level:       l.level,
		multiLogger: subLogger,
		writers:     l.writers,
	}
}

// AddWriter will add a writer to the list of channels where log output will be sent.
func (l *Logger) AddWriter(writer io.Writer, format LogFormat) {
	// Check to see if the writer is already in the array of writers
	for _, w := range l.writers {
		if writer == w {
			return
		}
	}

	// If we want unstructured output, wrap the base writer object into a console writer with no ANSI coloring
	if format == UNSTRUCTURED {
		writer = zerolog.ConsoleWriter{Out: writer, NoColor: true}
	}

	// Add it to the list of writers and update the multi logger
	l.writers = append(l.writers, writer)
	l.multiLogger = zerolog.New(zerolog.MultiLevelWriter(l.writers...)).Level(l.level).With().Timestamp().Logger()
}

// Level will get the log level of the Logger
func (l *Logger) Level() zerolog.Level {
	return l.level
}

// SetLevel will update the log level of the Logger
func (l *Logger) SetLevel(level zerolog.Level) {
	l.level = level
	l.multiLogger = l.multiLogger.Level(level)
}

// Trace is a wrapper function that will log a trace event
func (l *Logger) Trace(args ...any) {
	l.log(l.multiLogger.Trace(), args...)
}

// Debug is a wrapper function that will log a debug event
func (l *Logger) Debug(args ...any) {
	l.log(l.multiLogger.Debug(), args...)
}

// Info is a wrapper function that will log an info event
func (l *Logger) Info(args ...any) {
	l.log(l.multiLogger.Info(), args...)
}

// Warn is a wrapper function that will log a warning event
func (l *Logger) Warn(args ...any) {
	l.log(l.multiLogger.Warn(), args...)
}

// Error is a wrapper function that will log an error event
func (l *Logger) Error(args ...any) {
	l.log(l.multiLogger.Error(), args...)
}

// Panic is a wrapper function that will log a panic event
func (l *Logger) Panic(args ...any) {
	l.log(l.multiLogger.Panic(), args...)
}

// log builds a message out of the variadic argument list, chains any provided error or StructuredLogInfo to the
// given event, and sends the log off to its channels. Only one error and one StructuredLogInfo can be provided for
// each log message.
func (l *Logger) log(event *zerolog.Event, args ...any) {
	// Initialize the string buffer and the structured log info object
	output := make([]string, 0)
	var info StructuredLogInfo
	var err error

	// Iterate through each argument in the list and switch on type
	for _, arg := range args {
		switch t := arg.(type) {
		case StructuredLogInfo:
			info = t
		case error:
			err = t
		default:
			output = append(output, fmt.Sprintf("%v", t))
		}
	}

	// Chain the error. If we are in debug mode or below, then we will add the stack trace as well for debugging
	event.Err(err)
	if l.level <= zerolog.DebugLevel {
		event.Stack()
	}

	// If we are provided a structured log info object, add that as a key-value pair to the event
	if info != nil {
		event.Any("info", info)
	}

	// Append the message to the event. This will also result in the log event being sent out to its channels.
	event.Msg(strings.Join(output, ""))
}
