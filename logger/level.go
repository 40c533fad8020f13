package logger

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is both the severity of a message and the threshold a Logger filters on.
// Levels are ordered; a message is emitted when its level is at or above the threshold.
type Level int

const (
	// AllLevel is a threshold only: every message passes.
	AllLevel Level = iota
	// DebugLevel is for diagnostic breadcrumbs.
	DebugLevel
	// InfoLevel is for normal operational events.
	InfoLevel
	// WarnLevel is the default threshold.
	WarnLevel
	// ErrorLevel is for failures the program recovers from.
	ErrorLevel
	// FatalLevel messages bypass the threshold and are always emitted.
	// Logging at FatalLevel does not exit the process.
	FatalLevel
	// OffLevel is a threshold only: everything but FatalLevel is suppressed.
	OffLevel
)

var levelNames = [...]string{
	AllLevel:   "ALL",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
	OffLevel:   "OFF",
}

func (l Level) String() string {
	if !l.Valid() {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= AllLevel && l <= OffLevel
}

// severity reports whether l can be used as the level of a message.
func (l Level) severity() bool {
	return l >= DebugLevel && l <= FatalLevel
}

// ParseLevel accepts a level name (case-insensitive) or its integer ordinal.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if lvl := Level(n); lvl.Valid() {
			return lvl, nil
		}
		return AllLevel, fmt.Errorf("level ordinal %d out of range", n)
	}

	switch strings.ToUpper(s) {
	case "WARNING":
		return WarnLevel, nil
	case "CRIT", "CRITICAL":
		return FatalLevel, nil
	}
	for lvl, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(lvl), nil
		}
	}
	return AllLevel, fmt.Errorf("invalid level %q", s)
}

// Set implements the flag value interface used by pflag.
func (l *Level) Set(s string) error {
	lvl, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// Type names the flag value type in usage output.
func (l *Level) Type() string { return "level" }
