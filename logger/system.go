package logger

import (
	"errors"
	"fmt"
)

var errSystemLogUnavailable = errors.New("system log is not available on this platform")

// syslogWriter is the subset of *syslog.Writer the system sink needs.
type syslogWriter interface {
	Debug(m string) error
	Info(m string) error
	Notice(m string) error
	Err(m string) error
	Crit(m string) error
	Close() error
}

// systemSink hands the call site and message to the platform system log.
// The system log adds its own timestamp, so none is written here.
type systemSink struct {
	tag string
	w   syslogWriter
}

func newSystemSink(subsystem, category string) (*systemSink, error) {
	tag := subsystem + "/" + category
	w, err := dialSyslog(tag)
	if err != nil {
		return nil, err
	}
	return &systemSink{tag: tag, w: w}, nil
}

func (s *systemSink) write(e entry) error {
	msg := e.Caller.tag() + " " + describe(e.Message)

	var err error
	switch e.Level {
	case InfoLevel:
		err = s.w.Info(msg)
	case WarnLevel:
		err = s.w.Notice(msg)
	case ErrorLevel:
		err = s.w.Err(msg)
	case FatalLevel:
		err = s.w.Crit(msg)
	default:
		err = s.w.Debug(msg)
	}
	if err != nil {
		return fmt.Errorf("write system log %s: %w", s.tag, err)
	}
	return nil
}

func (s *systemSink) close() error {
	return s.w.Close()
}
