package logger

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables consulted by ReadEnvironment. Both hold integer ordinals.
const (
	EnvLevel       = "LOGGER_LEVEL"
	EnvDestination = "LOGGER_DESTINATION"
)

// ReadEnvironment overrides the threshold from LOGGER_LEVEL and the destination
// from LOGGER_DESTINATION. Missing, unparseable and out-of-range values are ignored.
// Switching to System reuses the subsystem and category given to Configure.
func (l *Logger) ReadEnvironment() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n, ok := envInt(EnvLevel); ok {
		if lvl := Level(n); lvl.Valid() {
			l.level = lvl
		}
	}
	if n, ok := envInt(EnvDestination); ok {
		if dest := Destination(n); dest.Valid() {
			l.bindLocked(dest)
		}
	}
}

// envInt reads an integer environment variable; ok is false when it is unset or not an integer.
func envInt(key string) (int, bool) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, false
	}
	return n, true
}
