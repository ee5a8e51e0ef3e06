// SPDX-License-Identifier: MIT

// Package logging provides the component logger used by the seqmem
// command and the request runner. The numeric packages never log.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level filters log entries; an entry is written when its level is at or
// below the logger's level.
type Level int

const (
	Quiet Level = iota
	Normal
	Verbose
	Debug
)

var levelNames = map[Level]string{
	Quiet:   "quiet",
	Normal:  "normal",
	Verbose: "verbose",
	Debug:   "debug",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}

	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel accepts a level name (case-insensitive).
func ParseLevel(s string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for lvl, name := range levelNames {
		if name == key {
			return lvl, nil
		}
	}

	return Quiet, fmt.Errorf("logging: unknown verbosity %q (want quiet, normal, verbose or debug)", s)
}

var (
	sessionID     string
	sessionIDOnce sync.Once
)

// SessionID returns the id shared by every logger of this process.
func SessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})

	return sessionID
}

// sink is shared between a logger and the children created by With.
type sink struct {
	mu     sync.Mutex
	logger *log.Logger
	file   *os.File
	once   sync.Once
}

// Logger writes "[timestamp] [component] [LEVEL] message" lines.
// A nil *Logger discards everything.
type Logger struct {
	component string
	level     Level
	sink      *sink
	now       func() time.Time
}

// New returns a logger for component writing to w.
func New(component string, w io.Writer, level Level) *Logger {
	return &Logger{
		component: component,
		level:     level,
		sink:      &sink{logger: log.New(w, "", 0)},
		now:       time.Now,
	}
}

// NewFile writes to <dir>/<session-id>-seqmem.log. When the directory or
// file cannot be prepared it returns a stderr logger together with the error.
func NewFile(dir, component string, level Level) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return New(component, os.Stderr, level), fmt.Errorf("logging: create log directory: %w", err)
	}
	path := filepath.Join(dir, SessionID()+"-seqmem.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return New(component, os.Stderr, level), fmt.Errorf("logging: open log file: %w", err)
	}

	l := New(component, f, level)
	l.sink.file = f

	return l, nil
}

// With returns a logger for another component sharing the same output.
func (l *Logger) With(component string) *Logger {
	if l == nil {
		return nil
	}
	child := *l
	child.component = component

	return &child
}

// Level reports the configured level.
func (l *Logger) Level() Level {
	if l == nil {
		return Quiet
	}

	return l.level
}

// Enabled reports whether entries at lvl would be written.
func (l *Logger) Enabled(lvl Level) bool {
	return l != nil && lvl <= l.level
}

func (l *Logger) write(lvl Level, tag, format string, v ...any) {
	if !l.Enabled(lvl) {
		return
	}
	msg := fmt.Sprintf(format, v...)
	entry := fmt.Sprintf("[%s] [%s] [%s] %s", l.now().Format("2006-01-02 15:04:05.000"), l.component, tag, msg)

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.logger.Println(entry)
}

// Errorf is written at every level except Quiet.
func (l *Logger) Errorf(format string, v ...any) { l.write(Normal, "ERROR", format, v...) }

// Warnf is written at Normal and above.
func (l *Logger) Warnf(format string, v ...any) { l.write(Normal, "WARN", format, v...) }

// Infof is written at Verbose and above.
func (l *Logger) Infof(format string, v ...any) { l.write(Verbose, "INFO", format, v...) }

// Debugf is written at Debug only.
func (l *Logger) Debugf(format string, v ...any) { l.write(Debug, "DEBUG", format, v...) }

// Close closes the log file, if any. Safe to call multiple times.
func (l *Logger) Close() error {
	if l == nil || l.sink.file == nil {
		return nil
	}
	var err error
	l.sink.once.Do(func() {
		err = l.sink.file.Close()
	})

	return err
}
