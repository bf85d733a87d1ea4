package colors

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

var (
	structuredMu      sync.Mutex
	structuredEnabled atomic.Bool
	now               = time.Now
)

func init() {
	structuredEnabled.Store(true)
}

// StructuredLogLevel represents the level of a structured entry.
type StructuredLogLevel string

const (
	LevelDebug StructuredLogLevel = "debug"
	LevelInfo  StructuredLogLevel = "info"
	LevelWarn  StructuredLogLevel = "warn"
	LevelError StructuredLogLevel = "error"
)

// StructuredLogEntry is one JSON line written to stderr.
type StructuredLogEntry struct {
	Timestamp string             `json:"timestamp"`
	Level     StructuredLogLevel `json:"level"`
	Component string             `json:"component"`
	Action    string             `json:"action"`
	Status    string             `json:"status"`
	Error     string             `json:"error,omitempty"`
	ID        string             `json:"id,omitempty"`
	Fields    map[string]any     `json:"fields,omitempty"`
}

// DisableStructuredLogging turns structured entries off. The TUI uses this
// so JSON lines do not corrupt the alternate screen.
func DisableStructuredLogging() {
	structuredEnabled.Store(false)
}

// EnableStructuredLogging turns structured entries back on.
func EnableStructuredLogging() {
	structuredEnabled.Store(true)
}

// StructuredLog writes a structured entry to stderr. Entries are only
// written in debug mode.
func StructuredLog(level StructuredLogLevel, component, action, status string, err error, id string, fields map[string]any) {
	if !DebugEnabled() || !structuredEnabled.Load() {
		return
	}

	entry := StructuredLogEntry{
		Timestamp: now().UTC().Format(time.RFC3339),
		Level:     level,
		Component: component,
		Action:    action,
		Status:    status,
		ID:        id,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		write(errWriter(), fmt.Sprintf("failed to marshal structured log: %v\n", marshalErr))
		return
	}

	structuredMu.Lock()
	defer structuredMu.Unlock()
	write(errWriter(), string(data)+"\n")
}

// StructuredDebug logs a structured debug entry.
func StructuredDebug(component, action, status string, err error, id string, fields map[string]any) {
	StructuredLog(LevelDebug, component, action, status, err, id, fields)
}

// StructuredInfo logs a structured info entry.
func StructuredInfo(component, action, status string, err error, id string, fields map[string]any) {
	StructuredLog(LevelInfo, component, action, status, err, id, fields)
}

// StructuredWarn logs a structured warning entry.
func StructuredWarn(component, action, status string, err error, id string, fields map[string]any) {
	StructuredLog(LevelWarn, component, action, status, err, id, fields)
}

// StructuredError logs a structured error entry.
func StructuredError(component, action, status string, err error, id string, fields map[string]any) {
	StructuredLog(LevelError, component, action, status, err, id, fields)
}
