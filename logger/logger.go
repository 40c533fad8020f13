package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mitchellh/go-homedir"
)

// Config defines options for New and Init.
// Start from DefaultConfig: the zero Level is AllLevel, not the WARN default.
type Config struct {
	// Level is the threshold; messages below it are dropped (FatalLevel never is).
	// Default: WarnLevel
	Level Level
	// Destination selects where lines go.
	// Default: Stdout
	Destination Destination
	// Subsystem and Category tag the system log. Both are required for System.
	Subsystem string
	Category  string
	// Product names the log directory <home>/log/<Product> and the File destination's <Product>.log.
	// Default: base name of the running executable
	Product string
	// Dir replaces <home>/log/<Product> as the directory for File output and DumpFile.
	// Default: "" (use the home directory)
	Dir string
	// Color controls ANSI colouring on Stdout and Stderr.
	// Default: ColorNever
	Color ColorMode
}

// DefaultConfig returns a WARN threshold writing to Stdout.
func DefaultConfig() Config {
	return Config{
		Level:       WarnLevel,
		Destination: Stdout,
	}
}

// Dependency injection points for testing outputs.
var (
	outStdout   io.Writer = os.Stdout
	outStderr   io.Writer = os.Stderr
	userHomeDir           = homedir.Dir
)

// Logger filters, formats and writes messages to one destination.
// A Logger is safe for concurrent use; lines from concurrent calls never interleave.
type Logger struct {
	mu sync.Mutex

	level     Level
	dest      Destination
	subsystem string
	category  string
	sink      sink

	product string
	dir     string
	color   ColorMode

	mark   time.Time
	marked bool

	now func() time.Time
}

// New returns a Logger configured from cfg.
// Invalid levels or destinations in cfg fall back to WarnLevel and Stdout.
func New(cfg Config) *Logger {
	l := &Logger{
		level:   WarnLevel,
		dest:    Stdout,
		product: cfg.Product,
		dir:     cfg.Dir,
		color:   cfg.Color,
		now:     time.Now,
	}
	if l.product == "" {
		l.product = defaultProduct()
	}

	l.mu.Lock()
	l.configureLocked(cfg.Level, cfg.Destination, cfg.Subsystem, cfg.Category)
	l.mu.Unlock()
	return l
}

func defaultProduct() string {
	name := filepath.Base(os.Args[0])
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "go-devlog"
	}
	return name
}

// Configure sets the threshold and destination.
// For System, subsystem and category tag the system log; when either is empty
// or the platform has no system log, Stdout is used instead.
// An invalid level or destination leaves that setting unchanged.
func (l *Logger) Configure(level Level, dest Destination, subsystem, category string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.configureLocked(level, dest, subsystem, category)
}

func (l *Logger) configureLocked(level Level, dest Destination, subsystem, category string) {
	if level.Valid() {
		l.level = level
	}
	l.subsystem, l.category = subsystem, category
	if !dest.Valid() {
		dest = l.dest
	}
	l.bindLocked(dest)
}

// bindLocked replaces the sink with one for dest.
func (l *Logger) bindLocked(dest Destination) {
	if l.sink != nil {
		if err := l.sink.close(); err != nil {
			l.reportLocked(fmt.Errorf("close %s: %w", l.dest, err))
		}
		l.sink = nil
	}

	if dest == System {
		if l.subsystem != "" && l.category != "" {
			if s, err := newSystemSink(l.subsystem, l.category); err == nil {
				l.sink, l.dest = s, System
				return
			}
		}
		dest = Stdout
	}

	switch dest {
	case Stderr:
		l.sink = newConsoleSink("stderr", outStderr, l.color)
	case File:
		l.sink = newFileSink(l.logDir, l.product+".log")
	default:
		dest = Stdout
		l.sink = newConsoleSink("stdout", outStdout, l.color)
	}
	l.dest = dest
}

// logDir is Config.Dir, or <home>/log/<product>.
func (l *Logger) logDir() (string, error) {
	if l.dir != "" {
		return l.dir, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "log", l.product), nil
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Destination returns the destination in effect, after any System fallback.
func (l *Logger) Destination() Destination {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dest
}

// Enabled reports whether a message at level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabledLocked(level)
}

func (l *Logger) enabledLocked(level Level) bool {
	if !level.severity() {
		return false
	}
	return level == FatalLevel || level >= l.level
}

// Close releases the log file or system log connection.
// The Logger stays usable; the next write reopens what it needs.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sink == nil {
		return nil
	}
	return l.sink.close()
}

// log emits msg with the call site skip frames above log.
func (l *Logger) log(skip int, level Level, msg any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabledLocked(level) {
		return
	}
	l.emitLocked(entry{
		Time:    l.now(),
		Level:   level,
		Caller:  callerAt(skip + 1),
		Message: msg,
	})
}

func (l *Logger) emitLocked(e entry) {
	if err := l.sink.write(e); err != nil {
		l.reportLocked(err)
	}
}

// reportLocked tells stderr about a problem in the logger itself.
func (l *Logger) reportLocked(err error) {
	fmt.Fprintf(outStderr, "logger: %v\n", err)
}

// sprintf defers fmt.Sprintf until the line is formatted.
type sprintf struct {
	format string
	args   []any
}

func (s sprintf) String() string { return fmt.Sprintf(s.format, s.args...) }

// LogAt emits msg at level with an explicit call site, for wrappers that
// report their own caller. AllLevel and OffLevel are not message levels and are ignored.
func (l *Logger) LogAt(level Level, caller Caller, msg any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabledLocked(level) {
		return
	}
	l.emitLocked(entry{Time: l.now(), Level: level, Caller: caller, Message: msg})
}

// Debug logs msg at DebugLevel. A nil or absent Optional message is written as EmptyPlaceholder.
func (l *Logger) Debug(msg any) { l.log(1, DebugLevel, msg) }

// Info logs msg at InfoLevel.
func (l *Logger) Info(msg any) { l.log(1, InfoLevel, msg) }

// Warn logs msg at WarnLevel.
func (l *Logger) Warn(msg any) { l.log(1, WarnLevel, msg) }

// Error logs msg at ErrorLevel. Errors are written using their Error method.
func (l *Logger) Error(msg any) { l.log(1, ErrorLevel, msg) }

// Fatal logs msg regardless of the threshold. It does not exit.
func (l *Logger) Fatal(msg any) { l.log(1, FatalLevel, msg) }

// Debugf logs a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) { l.log(1, DebugLevel, sprintf{format, v}) }

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) { l.log(1, InfoLevel, sprintf{format, v}) }

// Warnf logs a warning formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) { l.log(1, WarnLevel, sprintf{format, v}) }

// Errorf logs an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) { l.log(1, ErrorLevel, sprintf{format, v}) }

// Fatalf logs a fatal message formatted with fmt.Sprintf. It does not exit.
func (l *Logger) Fatalf(format string, v ...any) { l.log(1, FatalLevel, sprintf{format, v}) }

// Stamp logs a DEBUG breadcrumb carrying only the call site.
func (l *Logger) Stamp() { l.log(1, DebugLevel, nil) }
