package logger

import (
	"fmt"
	"strconv"
	"strings"
)

// Destination selects the sink that receives formatted lines.
type Destination int

const (
	// Stdout writes lines to standard output. It is the default.
	Stdout Destination = iota
	// Stderr writes lines to standard error.
	Stderr
	// File appends lines to <logdir>/<product>.log.
	File
	// System hands entries to the platform system log.
	// Without a subsystem and category, or where no system log exists, Stdout is used instead.
	System
)

var destinationNames = [...]string{
	Stdout: "STDOUT",
	Stderr: "STDERR",
	File:   "FILE",
	System: "SYSTEM",
}

func (d Destination) String() string {
	if !d.Valid() {
		return "Destination(" + strconv.Itoa(int(d)) + ")"
	}
	return destinationNames[d]
}

// Valid reports whether d is one of the declared destinations.
func (d Destination) Valid() bool {
	return d >= Stdout && d <= System
}

// ParseDestination accepts a destination name (case-insensitive) or its integer ordinal.
func ParseDestination(s string) (Destination, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if d := Destination(n); d.Valid() {
			return d, nil
		}
		return Stdout, fmt.Errorf("destination ordinal %d out of range", n)
	}

	switch strings.ToUpper(s) {
	case "SYSLOG":
		return System, nil
	}
	for d, name := range destinationNames {
		if strings.EqualFold(s, name) {
			return Destination(d), nil
		}
	}
	return Stdout, fmt.Errorf("invalid destination %q", s)
}

// Set implements the flag value interface used by pflag.
func (d *Destination) Set(s string) error {
	dest, err := ParseDestination(s)
	if err != nil {
		return err
	}
	*d = dest
	return nil
}

// Type names the flag value type in usage output.
func (d *Destination) Type() string { return "destination" }
