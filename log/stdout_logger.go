package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// StdoutLogger is the standard output logger for printing all logs into the commandline.
//
// The zero value prints every level to stdout.
type StdoutLogger struct {
	// Level is the least verbose level which will be printed.
	Level Level

	// Writer overrides stdout as the destination of the logs.
	Writer io.Writer
}

// Log method for the StdoutLogger which adds prefix dependant on the level and prints message inputted to terminal.
func (s StdoutLogger) Log(level Level, msg string, args ...any) {
	if level < s.Level {
		return
	}

	var prefix string

	switch level {
	case LevelTrace:
		prefix = "TRAC"
	case LevelDebug:
		prefix = "DEBU"
	case LevelInfo:
		prefix = "INFO"
	case LevelWarning:
		prefix = "WARN"
	case LevelError:
		prefix = "ERRO"
	case LevelPanic:
		prefix = "PNIC"
	}

	w := s.Writer
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintln(w, time.Now().Format(time.RFC3339Nano)+" "+prefix+": "+fmt.Sprintf(msg, args...))
}
