// Package logger provides a small leveled logger for application debugging.
//
// Every emitted line carries a timestamp and the call site:
//
//	1729260000.123456 [server.(*Server).Run:42] disk full
//
// # Levels
//
// Levels are ordered ALL < DEBUG < INFO < WARN < ERROR < FATAL < OFF.
// A message is written when its level is at or above the threshold (WARN by default).
// FATAL messages are always written, even with the threshold at OFF, and never exit the process.
//
// # Destinations
//
//   - Stdout (default) and Stderr, optionally coloured via Config.Color
//   - File, appending to <home>/log/<product>/<product>.log
//   - System, the platform syslog, tagged "subsystem/category"; falls back to Stdout
//     where no system log exists or the tags are missing
//
// # Usage
//
// Configure once at startup, optionally letting the environment override it:
//
//	logger.Configure(logger.InfoLevel, logger.Stdout, "", "")
//	logger.ReadEnvironment() // LOGGER_LEVEL=1 LOGGER_DESTINATION=2
//
// Log anywhere:
//
//	logger.Warn("disk full")
//	logger.Error(err)
//	logger.Debugf("cache size %d", n)
//	logger.Debug(logger.None[string]()) // writes <empty optional>
//
// Breadcrumbs and ad hoc timing:
//
//	logger.Stamp()
//	logger.TimerMark()
//	work()
//	logger.TimerMeasure() // ELAPSED [12.345678]ms
//
// Write a blob to its own file under the log directory:
//
//	logger.DumpFile(responseBody)
//
// Problems inside the logger (an unwritable file, a missing home directory)
// are reported on stderr and never returned to the caller.
//
// The package-level functions use a process-wide Logger; New builds
// independent Loggers for code that prefers passing one around.
package logger
