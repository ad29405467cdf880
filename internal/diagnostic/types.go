package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds everything validation found.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code    string
	Message string
	// Signature names the signature this relates to (if any).
	Signature string
	// Argument is the dotted path of the argument inside the signature,
	// e.g. "opts.sep" (if any).
	Argument string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic. Empty suggestions are dropped.
func (d *Diagnostics) AddError(code, message, signature, argument string, suggestions ...string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, signature, argument, suggestions))
}

// AddWarning adds a warning diagnostic. Empty suggestions are dropped.
func (d *Diagnostics) AddWarning(code, message, signature, argument string, suggestions ...string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, signature, argument, suggestions))
}

func newDiagnostic(sev Severity, code, message, signature, argument string, suggestions []string) Diagnostic {
	var kept []string
	for _, s := range suggestions {
		if s != "" {
			kept = append(kept, s)
		}
	}

	return Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     message,
		Signature:   signature,
		Argument:    argument,
		Suggestions: kept,
	}
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Error returns a combined error from all error diagnostics, or nil if
// there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		parts[i] = e.String()
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string, e.g.
//
//	[repeat] count: [unknown_type] unknown integer type "unit8" (did you mean uint8?)
func (d Diagnostic) String() string {
	var prefix []string
	if d.Signature != "" {
		prefix = append(prefix, "["+d.Signature+"]")
	}

	if d.Argument != "" {
		prefix = append(prefix, d.Argument)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, " or ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
