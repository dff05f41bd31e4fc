// Package logging provides a deliberately small, framework-agnostic
// structured logger used by the API server. CLI output stays on plain
// stdout/stderr; this is for machine-readable server logs.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Field is a simple key/value pair for structured logging fields.
type Field struct {
	Key   string
	Value any
}

// Logger is the logging interface the server components depend on.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// JSONLogger prints one JSON object per line to its writer.
type JSONLogger struct {
	component string
	out       io.Writer
}

// NewJSONLogger creates a logger writing to stdout. component is optional
// and tags every entry.
func NewJSONLogger(component string) *JSONLogger {
	return &JSONLogger{component: component, out: os.Stdout}
}

// NewJSONLoggerTo creates a logger writing to the given writer.
func NewJSONLoggerTo(component string, out io.Writer) *JSONLogger {
	return &JSONLogger{component: component, out: out}
}

func (l *JSONLogger) log(level string, msg string, fields ...Field) {
	type entry struct {
		Level     string         `json:"level"`
		Msg       string         `json:"msg"`
		Component string         `json:"component,omitempty"`
		Time      string         `json:"time"`
		Fields    map[string]any `json:"fields,omitempty"`
	}

	var m map[string]any
	if len(fields) > 0 {
		m = make(map[string]any, len(fields))
		for _, f := range fields {
			m[f.Key] = f.Value
		}
	}

	enc, err := json.Marshal(entry{
		Level:     level,
		Msg:       msg,
		Component: l.component,
		Time:      time.Now().UTC().Format(time.RFC3339),
		Fields:    m,
	})
	if err != nil {
		fmt.Fprintf(l.out, "%s %s %v\n", level, msg, m)
		return
	}
	fmt.Fprintln(l.out, string(enc))
}

func (l *JSONLogger) Debug(msg string, fields ...Field) { l.log("debug", msg, fields...) }
func (l *JSONLogger) Info(msg string, fields ...Field)  { l.log("info", msg, fields...) }
func (l *JSONLogger) Warn(msg string, fields ...Field)  { l.log("warn", msg, fields...) }
func (l *JSONLogger) Error(msg string, fields ...Field) { l.log("error", msg, fields...) }

// NopLogger discards everything. Used in tests.
type NopLogger struct{}

func (NopLogger) Debug(msg string, fields ...Field) {}
func (NopLogger) Info(msg string, fields ...Field)  {}
func (NopLogger) Warn(msg string, fields ...Field)  {}
func (NopLogger) Error(msg string, fields ...Field) {}
