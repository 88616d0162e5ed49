package stylelog

import "strings"

// Level is the severity of a log message, ranked ascending.
type Level int

const (
	// DebugLevel is the lowest severity.
	DebugLevel Level = iota + 1
	// InfoLevel is the default severity and the default minimum level.
	InfoLevel
	// WarnLevel marks conditions worth the stylesheet author's attention.
	WarnLevel
	// ErrorLevel marks hard failures; routed to the error channel.
	ErrorLevel
	// FatalLevel is the highest severity; routed to the error channel.
	FatalLevel
)

// levelNames is indexed by Level; index 0 is unused.
var levelNames = [...]string{"", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// String returns the level's canonical uppercase name.
func (l Level) String() string {
	if l >= DebugLevel && l <= FatalLevel {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// AllLevels returns the five levels in ascending severity order.
func AllLevels() []Level {
	return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}
}

// ErrorLevels returns the levels routed to the error channel.
func ErrorLevels() []Level {
	return []Level{ErrorLevel, FatalLevel}
}

// ParseLevel normalizes a level name, case-insensitively.
// Names outside the five known levels coerce to InfoLevel.
func ParseLevel(name string) Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	case "FATAL":
		return FatalLevel
	default:
		return InfoLevel
	}
}

// ParseThreshold resolves a minimum-level name to a rank and an enabled
// flag, case-insensitively. "ALL" maps to DebugLevel and "OFF" disables
// logging entirely. Any other unknown name falls back to InfoLevel with
// no warning, so a typo in the threshold silently means INFO.
func ParseThreshold(name string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ALL":
		return DebugLevel, true
	case "OFF":
		return 0, false
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "FATAL":
		return FatalLevel, true
	default:
		return InfoLevel, true
	}
}
