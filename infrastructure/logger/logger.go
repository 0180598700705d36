package logger

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Logger is a subsystem logger. Log messages are tagged with the
// subsystem and filtered by the logger's level before being handed to the
// backend's write goroutine.
type Logger struct {
	level        uint32
	subsystemTag string
	backend      *Backend
	writeChan    chan<- logEntry
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32(&l.level))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32(&l.level, uint32(level))
}

func (l *Logger) write(logLevel Level, format string, args ...interface{}) {
	if logLevel < l.Level() {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("%s [%s] %-4s %s\n", timestamp, logLevel, l.subsystemTag, message)
	if !l.backend.IsRunning() {
		_, _ = fmt.Fprint(os.Stderr, line)
		return
	}
	l.writeChan <- logEntry{log: []byte(line), level: logLevel}
}

// Tracef formats a message according to a format specifier and writes it
// with LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.write(LevelTrace, format, args...)
}

// Debugf formats a message according to a format specifier and writes it
// with LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.write(LevelDebug, format, args...)
}

// Infof formats a message according to a format specifier and writes it
// with LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write(LevelInfo, format, args...)
}

// Warnf formats a message according to a format specifier and writes it
// with LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(LevelWarn, format, args...)
}

// Errorf formats a message according to a format specifier and writes it
// with LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write(LevelError, format, args...)
}

// Criticalf formats a message according to a format specifier and writes
// it with LevelCritical.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.write(LevelCritical, format, args...)
}

// SubsystemTags holds the tag of every subsystem in the repository. Tags
// are registered here so log level control can enumerate them.
var SubsystemTags = struct {
	PMNT,
	PKIV,
	PCTL string
}{
	PMNT: "PMNT",
	PKIV: "PKIV",
	PCTL: "PCTL",
}

// BackendLog is the shared logging backend all subsystem loggers write
// to. Callers wire it to files or writers before calling Run.
var BackendLog = NewBackend()

var (
	subsystemLoggersMutex sync.Mutex
	subsystemLoggers      = make(map[string]*Logger)
)

// Get returns a logger of a specific sub-system, creating it on first
// use. The tags of all subsystems are listed in SubsystemTags.
func Get(tag string) (*Logger, error) {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	if logger, ok := subsystemLoggers[tag]; ok {
		return logger, nil
	}
	logger := BackendLog.Logger(tag)
	subsystemLoggers[tag] = logger
	return logger, nil
}

// SetLogLevels sets the logging level of all registered subsystems to the
// passed level string.
func SetLogLevels(level string) error {
	lvl, ok := LevelFromString(level)
	if !ok {
		return errors.Errorf("invalid log level %s", level)
	}
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	for _, logger := range subsystemLoggers {
		logger.SetLevel(lvl)
	}
	return nil
}
