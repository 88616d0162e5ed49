package stylelog

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Config defines options for Init.
// If MinimumLevel is empty, Init uses STYLELOG_LEVEL when set; otherwise
// the minimum level defaults to INFO.
type Config struct {
	// MinimumLevel is the threshold name: one of DEBUG, INFO, WARN, ERROR,
	// FATAL, ALL or OFF, case-insensitive. Messages below the threshold are
	// recorded in history but not emitted. Unknown names fall back to INFO.
	// Default: "" (STYLELOG_LEVEL, then INFO)
	MinimumLevel string
	// Colorize enables ANSI color for the level tag in console output.
	// Default: false
	Colorize bool
	// OnError is called with the level and the emitted line for every
	// message that reaches the error channel. The host hooks this to abort
	// its compile pass; the library itself never exits the process.
	// Default: nil
	OnError func(Level, string)
}

// global state
var (
	// Mutex for thread-safe logging across concurrent goroutines.
	logMutex sync.Mutex

	initialized bool
	minimum     Level
	enabled     bool
	history     map[Level][]string
	colorize    bool
	onError     func(Level, string)
)

// Dependency injection points for testing outputs. outStdout is the
// notice channel (never aborts the host), outStderr the error channel.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// levelColors maps each level to its console color.
var levelColors = map[Level]*color.Color{
	DebugLevel: color.New(color.FgCyan),
	InfoLevel:  color.New(color.FgGreen),
	WarnLevel:  color.New(color.FgYellow),
	ErrorLevel: color.New(color.FgRed),
	FatalLevel: color.New(color.FgMagenta),
}

// Init initializes the logger with the given minimum level, fully
// replacing any prior configuration and clearing the history. Calling it
// again later is legal and resets everything.
func Init(config Config) {
	logMutex.Lock()
	defer logMutex.Unlock()
	reset(config)
}

// InitLevel initializes the logger from a bare threshold name.
func InitLevel(minimumLevel string) {
	Init(Config{MinimumLevel: minimumLevel})
}

func reset(config Config) {
	name := config.MinimumLevel
	if name == "" {
		name = os.Getenv("STYLELOG_LEVEL")
	}
	if name == "" {
		name = "INFO"
	}
	minimum, enabled = ParseThreshold(name)
	colorize = config.Colorize
	onError = config.OnError
	history = emptyHistory()
	initialized = true
}

// emptyHistory returns the five always-present buckets, all empty.
func emptyHistory() map[Level][]string {
	h := make(map[Level][]string, len(levelNames)-1)
	for _, l := range AllLevels() {
		h[l] = []string{}
	}
	return h
}

// ensureInitialized lazily applies the INFO default before first use.
// Callers must hold logMutex.
func ensureInitialized() {
	if !initialized {
		reset(Config{MinimumLevel: "INFO"})
	}
}

// Log records message under level and, when the level passes the minimum
// threshold, emits "<LEVEL> :: <message>" on the level's channel. ERROR
// and FATAL go to the error channel, the rest to the notice channel.
// History grows on every call regardless of threshold; only emission is
// filtered. When the logger was initialized with OFF, Log does nothing.
// Unknown level names coerce to INFO. Thread-safe for concurrent use.
func Log(level, message string) {
	logMutex.Lock()
	defer logMutex.Unlock()
	ensureInitialized()

	if !enabled {
		return
	}

	l := ParseLevel(level)
	history[l] = append(history[l], message)

	if l < minimum {
		return
	}
	emit(l, message)
}

// emit writes the formatted line to the level's channel.
// Callers must hold logMutex.
func emit(l Level, message string) {
	tag := l.String()
	if colorize {
		tag = levelColors[l].Sprint(tag)
	}
	line := fmt.Sprintf("%s :: %s", tag, message)

	if l >= ErrorLevel {
		fmt.Fprintln(outStderr, line)
		if onError != nil {
			onError(l, line)
		}
		return
	}
	fmt.Fprintln(outStdout, line)
}

// Debug logs message at DEBUG level.
func Debug(message string) { Log("DEBUG", message) }

// Info logs message at INFO level.
func Info(message string) { Log("INFO", message) }

// Warn logs message at WARN level.
func Warn(message string) { Log("WARN", message) }

// Error logs message at ERROR level.
func Error(message string) { Log("ERROR", message) }

// Fatal logs message at FATAL level. Unlike log.Fatal it does not exit;
// aborting on error-channel output is the host's decision (see
// Config.OnError).
func Fatal(message string) { Log("FATAL", message) }

// Debugf logs a debug message formatted with fmt.Sprintf.
func Debugf(format string, v ...any) { Log("DEBUG", fmt.Sprintf(format, v...)) }

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(format string, v ...any) { Log("INFO", fmt.Sprintf(format, v...)) }

// Warnf logs a warning message formatted with fmt.Sprintf.
func Warnf(format string, v ...any) { Log("WARN", fmt.Sprintf(format, v...)) }

// Errorf logs an error message formatted with fmt.Sprintf.
func Errorf(format string, v ...any) { Log("ERROR", fmt.Sprintf(format, v...)) }

// Fatalf logs a fatal message formatted with fmt.Sprintf.
func Fatalf(format string, v ...any) { Log("FATAL", fmt.Sprintf(format, v...)) }

// Query is a read-only accessor into the logger's configuration.
// Known keys: "levels", "errorLevels", "minimumLevel", "enabled",
// "history". Unknown keys return (nil, false). The returned history is a
// copy; mutating it does not affect the logger.
func Query(key string) (any, bool) {
	logMutex.Lock()
	defer logMutex.Unlock()
	ensureInitialized()

	switch key {
	case "levels":
		return AllLevels(), true
	case "errorLevels":
		return ErrorLevels(), true
	case "minimumLevel":
		return minimum, true
	case "enabled":
		return enabled, true
	case "history":
		h := make(map[Level][]string, len(history))
		for l, msgs := range history {
			h[l] = append([]string{}, msgs...)
		}
		return h, true
	default:
		return nil, false
	}
}
