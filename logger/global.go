package logger

import (
	"fmt"
	"sync"
)

// The process-wide Logger behind the package-level functions.
var (
	stdMu sync.RWMutex
	std   = New(DefaultConfig())
)

// Default returns the Logger used by the package-level functions.
func Default() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// SetDefault makes l the Logger used by the package-level functions.
// A nil l is ignored. The previous Logger is not closed.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	stdMu.Lock()
	std = l
	stdMu.Unlock()
}

// Init replaces the default Logger with New(config) and closes the previous one.
// Call it once at startup; Close releases the log file at shutdown.
func Init(config Config) {
	l := New(config)
	stdMu.Lock()
	prev := std
	std = l
	stdMu.Unlock()
	if err := prev.Close(); err != nil {
		fmt.Fprintf(outStderr, "logger: %v\n", err)
	}
}

// Configure sets the default Logger's threshold and destination. See Logger.Configure.
func Configure(level Level, dest Destination, subsystem, category string) {
	Default().Configure(level, dest, subsystem, category)
}

// ReadEnvironment applies LOGGER_LEVEL and LOGGER_DESTINATION to the default Logger.
func ReadEnvironment() { Default().ReadEnvironment() }

// Close releases the default Logger's log file or system log connection.
func Close() error { return Default().Close() }

// Enabled reports whether the default Logger would emit a message at level.
func Enabled(level Level) bool { return Default().Enabled(level) }

// --- Level functions ---

// Debug logs msg at DebugLevel. A nil or absent Optional message is written as EmptyPlaceholder.
func Debug(msg any) { Default().log(1, DebugLevel, msg) }

// Info logs msg at InfoLevel.
func Info(msg any) { Default().log(1, InfoLevel, msg) }

// Warn logs msg at WarnLevel.
func Warn(msg any) { Default().log(1, WarnLevel, msg) }

// Error logs msg at ErrorLevel.
func Error(msg any) { Default().log(1, ErrorLevel, msg) }

// Fatal logs msg regardless of the threshold. It does not exit.
func Fatal(msg any) { Default().log(1, FatalLevel, msg) }

// Debugf logs a debug message formatted with fmt.Sprintf.
func Debugf(format string, v ...any) { Default().log(1, DebugLevel, sprintf{format, v}) }

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(format string, v ...any) { Default().log(1, InfoLevel, sprintf{format, v}) }

// Warnf logs a warning formatted with fmt.Sprintf.
func Warnf(format string, v ...any) { Default().log(1, WarnLevel, sprintf{format, v}) }

// Errorf logs an error message formatted with fmt.Sprintf.
func Errorf(format string, v ...any) { Default().log(1, ErrorLevel, sprintf{format, v}) }

// Fatalf logs a fatal message formatted with fmt.Sprintf. It does not exit.
func Fatalf(format string, v ...any) { Default().log(1, FatalLevel, sprintf{format, v}) }

// LogAt logs msg on the default Logger with an explicit call site.
func LogAt(level Level, caller Caller, msg any) { Default().LogAt(level, caller, msg) }

// Stamp logs a DEBUG breadcrumb carrying only the call site.
func Stamp() { Default().log(1, DebugLevel, nil) }

// DumpFile writes content to a new file in the default Logger's log directory.
func DumpFile(content string) { Default().DumpFile(content) }

// TimerMark starts the default Logger's stopwatch.
func TimerMark() { Default().TimerMark() }

// TimerMeasure logs the time since TimerMark at DebugLevel.
func TimerMeasure() { Default().measure(1) }
