//go:build !windows && !plan9

package logger

import "log/syslog"

// dialSyslog connects to the local syslog daemon. Replaced in tests.
var dialSyslog = func(tag string) (syslogWriter, error) {
	w, err := syslog.New(syslog.LOG_USER|syslog.LOG_DEBUG, tag)
	if err != nil {
		return nil, err
	}
	return w, nil
}
