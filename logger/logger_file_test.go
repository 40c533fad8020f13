package logger

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHome points the home directory lookup at a temporary directory.
func fakeHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	old := userHomeDir
	t.Cleanup(func() { userHomeDir = old })
	userHomeDir = func() (string, error) { return home, nil }
	return home
}

func TestFileLogging_HomeDirectoryLayout(t *testing.T) {
	captureOutput(t)
	home := fakeHome(t)

	Init(Config{Level: InfoLevel, Destination: File, Product: "demo"})
	defer Close()

	Info("file info")
	Debug("file debug")

	content, err := os.ReadFile(filepath.Join(home, "log", "demo", "demo.log"))
	require.NoError(t, err)

	log := string(content)
	assert.Contains(t, log, "file info")
	assert.NotContains(t, log, "file debug")
	assert.Regexp(t, `^\d+\.\d{6} \[logger_file_test\.TestFileLogging_HomeDirectoryLayout:\d+\] file info\n$`, log)
}

func TestFileLogging_HomeFromEnvironment(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		t.Skip("home directory is not read from $HOME")
	}
	captureOutput(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	l := New(Config{Level: InfoLevel, Destination: File, Product: "envhome"})
	defer l.Close()
	l.Info("found home")

	content, err := os.ReadFile(filepath.Join(home, "log", "envhome", "envhome.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "found home")
}

func TestFileLogging_NothingCreatedUntilFirstWrite(t *testing.T) {
	captureOutput(t)
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	l := New(Config{Level: ErrorLevel, Destination: File, Dir: dir, Product: "app"})
	defer l.Close()

	l.Info("filtered")
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	l.Error("written")
	content, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "written")
}

func TestFileLogging_Append(t *testing.T) {
	captureOutput(t)
	dir := t.TempDir()

	Init(Config{Level: InfoLevel, Destination: File, Dir: dir, Product: "append"})
	Infof("first message")
	require.NoError(t, Close())

	Init(Config{Level: InfoLevel, Destination: File, Dir: dir, Product: "append"})
	Infof("second message")
	require.NoError(t, Close())

	content, err := os.ReadFile(filepath.Join(dir, "append.log"))
	require.NoError(t, err)

	log := string(content)
	assert.Contains(t, log, "first message")
	assert.Contains(t, log, "second message")
	assert.Equal(t, 2, strings.Count(log, "\n"))
}

func TestFileLogging_CloseThenWriteReopens(t *testing.T) {
	captureOutput(t)
	dir := t.TempDir()

	l := New(Config{Level: InfoLevel, Destination: File, Dir: dir, Product: "reopen"})
	l.Info("before close")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	l.Info("after close")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(filepath.Join(dir, "reopen.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "before close")
	assert.Contains(t, string(content), "after close")
}

func TestFileLogging_UnwritableDirectoryReported(t *testing.T) {
	stdout, stderr := captureOutput(t)

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	l := New(Config{Level: InfoLevel, Destination: File, Dir: filepath.Join(blocker, "logs")})
	l.Info("lost message")
	l.Info("lost again")

	assert.Equal(t, 2, strings.Count(stderr.String(), "logger: create log directory"))
	assert.NotContains(t, stderr.String(), "lost message")
	assert.Empty(t, stdout.String())
}

func TestFileLogging_HomeDirectoryErrorReported(t *testing.T) {
	_, stderr := captureOutput(t)
	old := userHomeDir
	t.Cleanup(func() { userHomeDir = old })
	userHomeDir = func() (string, error) { return "", errors.New("$HOME is not defined") }

	l := New(Config{Level: InfoLevel, Destination: File})
	l.Info("nowhere to go")

	assert.Contains(t, stderr.String(), "logger: resolve home directory: $HOME is not defined")
}

func TestFileLogging_NoFile(t *testing.T) {
	captureOutput(t)

	Init(Config{Level: InfoLevel})
	Infof("test message")

	assert.NoError(t, Close())
}

func TestDumpFile_WritesContentVerbatim(t *testing.T) {
	captureOutput(t)
	dir := t.TempDir()

	l := New(Config{Level: OffLevel, Destination: Stderr, Dir: dir})
	l.now = fixedClock(time.Unix(1700000000, 999))
	l.DumpFile("x")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1700000000.log", entries[0].Name())

	content, err := os.ReadFile(filepath.Join(dir, "1700000000.log"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(content))
}

func TestDumpFile_OneFilePerCallNamedByEpochSeconds(t *testing.T) {
	captureOutput(t)
	home := fakeHome(t)

	Init(Config{Level: OffLevel, Destination: Stdout, Product: "dumps"})
	before := time.Now().Unix()
	DumpFile("payload\nwith lines")
	after := time.Now().Unix()

	dir := filepath.Join(home, "log", "dumps")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	name := entries[0].Name()
	require.Regexp(t, regexp.MustCompile(`^\d+\.log$`), name)
	secs, err := strconv.ParseInt(strings.TrimSuffix(name, ".log"), 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, secs, before)
	assert.LessOrEqual(t, secs, after)

	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "payload\nwith lines", string(content))
}

func TestDumpFile_FailureReported(t *testing.T) {
	_, stderr := captureOutput(t)

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	l := New(Config{Dir: filepath.Join(blocker, "dumps")})
	assert.NotPanics(t, func() { l.DumpFile("content") })
	assert.Contains(t, stderr.String(), "logger: create log directory")
}
