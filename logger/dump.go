package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DumpFile writes content to <logdir>/<unix-seconds>.log, ignoring the threshold
// and destination. Two dumps within the same second share a file name; the later one wins.
// Failures are reported on stderr.
func (l *Logger) DumpFile(content string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.dumpLocked(content); err != nil {
		l.reportLocked(err)
	}
}

func (l *Logger) dumpLocked(content string) error {
	dir, err := l.logDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, strconv.FormatInt(l.now().Unix(), 10)+".log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("dump to %s: %w", path, err)
	}
	return nil
}
