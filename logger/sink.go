package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// sink receives entries that passed the level filter.
// Errors are reported by the Logger and never reach the caller.
type sink interface {
	write(e entry) error
	close() error
}

// ColorMode controls ANSI colouring of console lines.
type ColorMode int

const (
	// ColorNever writes plain lines. It is the default.
	ColorNever ColorMode = iota
	// ColorAuto colours lines only when the console is a terminal.
	ColorAuto
	// ColorAlways colours lines regardless of the target.
	ColorAlways
)

var levelColors = map[Level]*color.Color{
	DebugLevel: forcedColor(color.FgCyan),
	InfoLevel:  forcedColor(color.FgGreen),
	WarnLevel:  forcedColor(color.FgYellow),
	ErrorLevel: forcedColor(color.FgRed),
	FatalLevel: forcedColor(color.FgMagenta),
}

// forcedColor ignores color.NoColor; whether to colour is decided per sink.
func forcedColor(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

func wantColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorAuto:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		f, ok := w.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	default:
		return false
	}
}

// consoleSink writes lines to stdout or stderr.
type consoleSink struct {
	name    string
	w       io.Writer
	colored bool
	journal bool
}

func newConsoleSink(name string, w io.Writer, mode ColorMode) *consoleSink {
	return &consoleSink{
		name:    name,
		w:       w,
		colored: wantColor(mode, w),
		journal: shouldUseJournalPrefix(),
	}
}

func (s *consoleSink) write(e entry) error {
	line := formatLine(e)
	if s.colored {
		if c, ok := levelColors[e.Level]; ok {
			line = c.Sprint(strings.TrimSuffix(line, "\n")) + "\n"
		}
	}
	if s.journal {
		line = prefixLines(journalPriority(e.Level), line)
	}
	if _, err := io.WriteString(s.w, line); err != nil {
		return fmt.Errorf("write to %s: %w", s.name, err)
	}
	return nil
}

func (s *consoleSink) close() error { return nil }

// shouldUseJournalPrefix reports whether stdout/stderr is captured by journald.
func shouldUseJournalPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

// journalPriority returns the sd-daemon "<N>" prefix for a level,
// matching the system log severity mapping.
func journalPriority(level Level) string {
	switch level {
	case InfoLevel:
		return "<6>"
	case WarnLevel:
		return "<5>"
	case ErrorLevel:
		return "<3>"
	case FatalLevel:
		return "<2>"
	default:
		return "<7>"
	}
}

// prefixLines puts prefix in front of every line of a newline-terminated text.
func prefixLines(prefix, text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(prefix))
	b.WriteString(prefix)
	for i := 0; i < len(text); i++ {
		b.WriteByte(text[i])
		if text[i] == '\n' && i != len(text)-1 {
			b.WriteString(prefix)
		}
	}
	return b.String()
}

// fileSink appends lines to <dir>/<name>. The file is opened on first write
// and kept open until close.
type fileSink struct {
	dir  func() (string, error)
	name string
	path string
	f    *os.File
}

func newFileSink(dir func() (string, error), name string) *fileSink {
	return &fileSink{dir: dir, name: name}
}

func (s *fileSink) open() error {
	dir, err := s.dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory %s: %w", dir, err)
	}
	s.path = filepath.Join(dir, s.name)
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", s.path, err)
	}
	s.f = f
	return nil
}

func (s *fileSink) write(e entry) error {
	if s.f == nil {
		if err := s.open(); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(s.f, formatLine(e)); err != nil {
		return fmt.Errorf("write log file %s: %w", s.path, err)
	}
	return nil
}

func (s *fileSink) close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
