package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu     sync.Mutex
	level            = LevelInfo
	output io.Writer = os.Stdout

	tags = map[Level]string{
		LevelDebug: color.New(color.FgCyan).Sprint("DEBUG"),
		LevelInfo:  color.New(color.FgGreen).Sprint("INFO "),
		LevelWarn:  color.New(color.FgYellow).Sprint("WARN "),
		LevelError: color.New(color.FgRed, color.Bold).Sprint("ERROR"),
	}
)

// * SetLevel changes the minimum level that gets written
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// * SetOutput redirects log lines, mostly useful in tests
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// * ParseLevel maps a LOG_LEVEL value to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func logf(l Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if l < level {
		return
	}
	fmt.Fprintf(output, "%s %s %s\n", time.Now().Format("2006-01-02 15:04:05"), tags[l], fmt.Sprintf(format, args...))
}

func Debug(format string, args ...any) { logf(LevelDebug, format, args...) }

func Info(format string, args ...any) { logf(LevelInfo, format, args...) }

func Warn(format string, args ...any) { logf(LevelWarn, format, args...) }

func Error(format string, args ...any) { logf(LevelError, format, args...) }
