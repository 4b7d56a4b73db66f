package utils

import (
	"fmt"
	"os"
	"time"
)

// Logger writes debug messages to a date-keyed log file when verbose
// mode is enabled. It is passed explicitly to the components that log;
// a nil *Logger is valid and drops everything.
type Logger struct {
	verbose bool
	file    *os.File
}

// NewLogger creates a logger. With verbose disabled, all messages are
// dropped and no file is created.
func NewLogger(verbose bool) *Logger {
	l := &Logger{verbose: verbose}

	if verbose {
		// Create log filename with current date
		logFileName := fmt.Sprintf("/tmp/tabuddy_%s.log", time.Now().Format("2006-01-02"))

		file, err := os.Create(logFileName)
		if err != nil {
			fmt.Printf("Error creating log file: %v\n", err)
			return l
		}
		l.file = file

		l.Logf("Verbose logging enabled")
	}

	return l
}

// Logf prints a debug message to the log file if verbose mode is
// enabled.
func (l *Logger) Logf(text string, args ...interface{}) {
	if l == nil || !l.verbose || l.file == nil {
		return
	}
	fmt.Fprintf(l.file, text+"\n", args...)
}

// Close closes the log file if it's open.
func (l *Logger) Close() {
	if l != nil && l.file != nil {
		l.file.Close()
	}
}
