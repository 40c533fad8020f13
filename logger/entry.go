package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Caller identifies the call site recorded on a line.
type Caller struct {
	File     string
	Function string
	Line     int
}

// entry is a single message on its way to a sink.
type entry struct {
	Time    time.Time
	Level   Level
	Caller  Caller
	Message any
}

// callerAt returns the call site skip frames above the function calling callerAt.
func callerAt(skip int) Caller {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Caller{File: "unknown", Function: "unknown"}
	}
	c := Caller{File: file, Function: "unknown", Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		c.Function = fn.Name()
	}
	return c
}

// tag renders "[file.function:line]".
func (c Caller) tag() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(fileBase(c.File))
	b.WriteByte('.')
	b.WriteString(shortFunction(c.Function))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(c.Line))
	b.WriteByte(']')
	return b.String()
}

// fileBase strips the directory and extension: /src/app/server.go -> server.
func fileBase(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// shortFunction strips the import path and package qualifier from a runtime
// function name: github.com/a/b/pkg.(*T).Run -> (*T).Run.
// A versioned package element (gopkg.in/yaml.v3, escaped as yaml%2ev3 in
// symbol names) is stripped whole.
func shortFunction(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Replace(name, "%2e", ".", 1)
	i := strings.Index(name, ".")
	if i < 0 || i+1 == len(name) {
		return name
	}
	name = name[i+1:]
	if n := majorVersion(name); n > 0 && n < len(name) {
		name = name[n:]
	}
	return name
}

// majorVersion returns the length of a leading "vN." or 0.
func majorVersion(s string) int {
	if len(s) < 3 || s[0] != 'v' {
		return 0
	}
	i := 1
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 1 || i == len(s) || s[i] != '.' {
		return 0
	}
	return i + 1
}

// timestamp renders seconds since the Unix epoch with microsecond precision.
func timestamp(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/int(time.Microsecond))
}

// formatLine renders the line written by console and file sinks, newline included.
func formatLine(e entry) string {
	var b strings.Builder
	b.WriteString(timestamp(e.Time))
	b.WriteByte(' ')
	b.WriteString(e.Caller.tag())
	b.WriteByte(' ')
	b.WriteString(describe(e.Message))
	b.WriteByte('\n')
	return b.String()
}
