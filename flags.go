package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mordilloSan/go-devlog/logger"
)

var (
	_ pflag.Value = (*logger.Level)(nil)
	_ pflag.Value = (*logger.Destination)(nil)
	_ pflag.Value = (*colorFlag)(nil)
)

// colorFlag parses --color=auto|always|never.
type colorFlag logger.ColorMode

func (c *colorFlag) String() string {
	switch logger.ColorMode(*c) {
	case logger.ColorAuto:
		return "auto"
	case logger.ColorAlways:
		return "always"
	default:
		return "never"
	}
}

func (c *colorFlag) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		*c = colorFlag(logger.ColorAuto)
	case "always":
		*c = colorFlag(logger.ColorAlways)
	case "never":
		*c = colorFlag(logger.ColorNever)
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
	return nil
}

func (c *colorFlag) Type() string { return "mode" }
