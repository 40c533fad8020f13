//go:build windows || plan9

package logger

var dialSyslog = func(tag string) (syslogWriter, error) {
	return nil, errSystemLogUnavailable
}
