package errors

import "fmt"

// Warning is a non-fatal layout anomaly. Rendering always completes when a
// warning is raised; the warning is surfaced next to the output instead.
type Warning struct {
	Code    Code   // Always ErrCodeLayoutWarning today
	Line    int    // 1-based input line, 0 when unknown
	Message string // Human-readable message
}

// String formats the warning like an [Error] message.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}

// Warnf creates a layout warning with a formatted message.
func Warnf(format string, args ...any) Warning {
	return Warning{Code: ErrCodeLayoutWarning, Message: fmt.Sprintf(format, args...)}
}

// Warnings collects warnings in the order they are raised.
// The zero value is ready to use.
type Warnings struct {
	list []Warning
}

// Add appends a formatted layout warning.
func (w *Warnings) Add(format string, args ...any) {
	w.list = append(w.list, Warnf(format, args...))
}

// AddAt appends a formatted layout warning tied to an input line.
func (w *Warnings) AddAt(line int, format string, args ...any) {
	warn := Warnf(format, args...)
	warn.Line = line
	w.list = append(w.list, warn)
}

// Extend appends already built warnings.
func (w *Warnings) Extend(ws ...Warning) {
	w.list = append(w.list, ws...)
}

// List returns the collected warnings.
func (w *Warnings) List() []Warning {
	return w.list
}

// Len reports how many warnings were collected.
func (w *Warnings) Len() int {
	return len(w.list)
}
