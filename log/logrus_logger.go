package log

import "github.com/sirupsen/logrus"

// LogrusLogger forwards logs to a 'logrus.Logger', allowing applications to use its formatters and hooks.
type LogrusLogger struct {
	Logger *logrus.Logger

	// Level is the least verbose level which will be forwarded.
	Level Level
}

// NewLogrusLogger returns a logger which writes to the given 'logrus.Logger' using the verbosity of the given level.
func NewLogrusLogger(logger *logrus.Logger, level Level) LogrusLogger {
	logger.SetLevel(logrusLevel(level))
	return LogrusLogger{Logger: logger, Level: level}
}

func (l LogrusLogger) Log(level Level, format string, args ...any) {
	// Filtered here as well since several levels share 'logrus.ErrorLevel'
	if level < l.Level {
		return
	}

	l.Logger.Logf(logrusLevel(level), format, args...)
}

// logrusLevel maps a level to its logrus equivalent.
//
// NOTE: 'LevelPanic' maps to 'logrus.ErrorLevel' because 'Panicf' is responsible for panicking, logging at
// 'logrus.PanicLevel' would cause logrus to panic first.
func logrusLevel(level Level) logrus.Level {
	switch level {
	case LevelTrace:
		return logrus.TraceLevel
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarning:
		return logrus.WarnLevel
	}

	return logrus.ErrorLevel
}
