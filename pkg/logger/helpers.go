package logger

import (
	"fmt"
	"strings"
)

// Icons for common log message types
const (
	IconSuccess = "✅"
	IconWarning = "⚠️"
	IconRefresh = "🔄"
	IconFire    = "🔥"
	IconDrone   = "🚁"
)

// Success logs a success message with a checkmark
func Success(args ...interface{}) {
	defaultLogger.Info(IconSuccess + " " + fmt.Sprint(args...))
}

// Successf logs a formatted success message
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Progress logs a progress message
func Progress(args ...interface{}) {
	defaultLogger.Info(IconRefresh + " " + fmt.Sprint(args...))
}

// Progressf logs a formatted progress message
func Progressf(format string, args ...interface{}) {
	Progress(fmt.Sprintf(format, args...))
}

// LogSection prints a visual section divider with a title
func LogSection(title string) {
	divider := strings.Repeat("=", len(title)+8)
	defaultLogger.Info(divider)
	defaultLogger.Info("    " + title)
	defaultLogger.Info(divider)
}
