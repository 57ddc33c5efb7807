package diagnostic

import (
	"fmt"
	"strings"
)

// WarningPrefix marks warnings in their string form.
const WarningPrefix = "Warning: "

// Notification codes.
const (
	CodeInstallments     = "installments_detected"
	CodeFallbackID       = "fallback_reference_id"
	CodeCompositeID      = "composite_id_split"
	CodeMapping          = "column_mapping"
	CodeUnmappedField    = "unmapped_field"
	CodePasswords        = "passwords_generated"
	CodePaymentsList     = "payments_normalized"
	CodeDuplicateRemoved = "duplicates_removed"
)

// Severity represents the severity level of a notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Notification is a single, immutable log entry.
type Notification struct {
	// Severity of the notification.
	Severity Severity
	// Code identifies the kind of notification.
	Code string
	// Message is the human-readable description, without severity prefix.
	Message string
}

// String returns the message, prefixed with "Warning: " for warnings.
func (n Notification) String() string {
	if n.Severity == SeverityWarning {
		return WarningPrefix + n.Message
	}

	return n.Message
}

// Log is an append-only, ordered notification log.
// Entries are never deduplicated or reordered.
type Log struct {
	entries []Notification
}

// Info appends an informational entry.
func (l *Log) Info(code, format string, args ...any) {
	l.add(SeverityInfo, code, format, args...)
}

// Warn appends a warning entry.
func (l *Log) Warn(code, format string, args ...any) {
	l.add(SeverityWarning, code, format, args...)
}

func (l *Log) add(sev Severity, code, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	l.entries = append(l.entries, Notification{Severity: sev, Code: code, Message: msg})
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// All returns every entry in emission order.
func (l *Log) All() []Notification {
	out := make([]Notification, len(l.entries))
	copy(out, l.entries)

	return out
}

// Infos returns the informational entries in emission order.
func (l *Log) Infos() []Notification {
	return l.filter(SeverityInfo)
}

// Warnings returns the warning entries in emission order.
func (l *Log) Warnings() []Notification {
	return l.filter(SeverityWarning)
}

// HasWarnings returns true if any warning was logged.
func (l *Log) HasWarnings() bool {
	return len(l.Warnings()) > 0
}

// ByCode returns the entries with the given code in emission order.
func (l *Log) ByCode(code string) []Notification {
	var out []Notification

	for _, n := range l.entries {
		if n.Code == code {
			out = append(out, n)
		}
	}

	return out
}

// Strings renders every entry with Notification.String.
func (l *Log) Strings() []string {
	out := make([]string, len(l.entries))
	for i, n := range l.entries {
		out[i] = n.String()
	}

	return out
}

// String joins all entries, one per line.
func (l *Log) String() string {
	return strings.Join(l.Strings(), "\n")
}

func (l *Log) filter(sev Severity) []Notification {
	var out []Notification

	for _, n := range l.entries {
		if n.Severity == sev {
			out = append(out, n)
		}
	}

	return out
}
