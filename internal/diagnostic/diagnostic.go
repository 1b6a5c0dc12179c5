// Package diagnostic collects and renders the user-facing findings of a
// boundary check run.
package diagnostic

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Category classifies diagnostics for filtering and JSON consumers.
type Category string

const (
	// CategoryPropsFunction marks a prop that is a function outside the
	// Server Action naming convention.
	CategoryPropsFunction Category = "props-function"
	// CategoryPropsClass marks a prop whose type is a non-allowlisted
	// class or constructor.
	CategoryPropsClass Category = "props-class"
	// CategoryConfigInvalid marks problems with the tool's own configuration.
	CategoryConfigInvalid Category = "config-invalid"
)

// Diagnostic represents a structured finding.
type Diagnostic struct {
	Severity  Severity `json:"severity"`
	Category  Category `json:"category"`
	File      string   `json:"file,omitempty"`
	Line      int      `json:"line,omitempty"`   // 1-based, 0 = unknown
	Column    int      `json:"column,omitempty"` // 1-based, 0 = unknown
	Component string   `json:"component,omitempty"`
	Prop      string   `json:"prop,omitempty"`
	Message   string   `json:"message"`
}

// String formats the diagnostic for terminal display.
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.File != "" {
		sb.WriteString(d.File)
		if d.Line > 0 {
			fmt.Fprintf(&sb, ":%d", d.Line)
			if d.Column > 0 {
				fmt.Fprintf(&sb, ":%d", d.Column)
			}
		}
		sb.WriteString(" - ")
	}

	sb.WriteString(d.Severity.String())
	sb.WriteString(": ")

	if d.Category != "" {
		sb.WriteString("[")
		sb.WriteString(string(d.Category))
		sb.WriteString("] ")
	}

	sb.WriteString(d.Message)
	return sb.String()
}

// FunctionNotActionMessage renders the diagnostic text for a function prop
// outside the Server Action naming convention.
func FunctionNotActionMessage(prop string) string {
	return fmt.Sprintf(`Props must be serializable for components in the "use client" entry file. `+
		`"%s" is a function that's not a Server Action. `+
		`Rename "%s" either to "action" or have its name end with "Action" e.g. "%sAction" `+
		`to indicate it is a Server Action.`, prop, prop, prop)
}

// InvalidClassMessage renders the diagnostic text for a class-typed prop.
func InvalidClassMessage(prop string) string {
	return fmt.Sprintf(`Props must be serializable for components in the "use client" entry file, `+
		`"%s" is invalid.`, prop)
}

// Collector collects diagnostics during a check run.
type Collector struct {
	diagnostics []Diagnostic
	strict      bool // if true, warnings become errors
	quiet       bool // if true, suppress warnings and infos
}

// NewCollector creates a new diagnostic collector.
func NewCollector(strict, quiet bool) *Collector {
	return &Collector{strict: strict, quiet: quiet}
}

// Add records a fully-formed diagnostic.
func (c *Collector) Add(d Diagnostic) {
	if c == nil {
		return
	}
	c.diagnostics = append(c.diagnostics, d)
}

// Warn adds a warning diagnostic, promoted to error in strict mode.
func (c *Collector) Warn(category Category, file string, line int, message string) {
	if c == nil || c.quiet {
		return
	}
	sev := SeverityWarning
	if c.strict {
		sev = SeverityError
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: sev,
		Category: category,
		File:     file,
		Line:     line,
		Message:  message,
	})
}

// Error adds an error diagnostic.
func (c *Collector) Error(category Category, file string, line int, message string) {
	if c == nil {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityError,
		Category: category,
		File:     file,
		Line:     line,
		Message:  message,
	})
}

// Info adds an informational diagnostic.
func (c *Collector) Info(category Category, file string, line int, message string) {
	if c == nil || c.quiet {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityInfo,
		Category: category,
		File:     file,
		Line:     line,
		Message:  message,
	})
}

// Diagnostics returns all collected diagnostics in report order.
func (c *Collector) Diagnostics() []Diagnostic {
	if c == nil {
		return nil
	}
	return c.diagnostics
}

// HasErrors returns true if any error-level diagnostics exist.
func (c *Collector) HasErrors() bool {
	return c.ErrorCount() > 0
}

// ErrorCount returns the number of error diagnostics.
func (c *Collector) ErrorCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, d := range c.diagnostics {
		if d.Severity == SeverityError {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning diagnostics.
func (c *Collector) WarningCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, d := range c.diagnostics {
		if d.Severity == SeverityWarning {
			count++
		}
	}
	return count
}

// FormatAll formats all diagnostics as a multi-line string.
func (c *Collector) FormatAll() string {
	if c == nil || len(c.diagnostics) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range c.diagnostics {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// WriteJSON writes the collected diagnostics as an indented JSON array.
func (c *Collector) WriteJSON(w io.Writer) error {
	diags := c.Diagnostics()
	if diags == nil {
		diags = []Diagnostic{}
	}
	return json.MarshalWrite(w, diags, jsontext.WithIndent("  "))
}

// Summary returns a summary line like "2 error(s), 1 warning(s)".
func (c *Collector) Summary() string {
	if c == nil {
		return ""
	}
	var parts []string
	if n := c.ErrorCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d error(s)", n))
	}
	if n := c.WarningCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d warning(s)", n))
	}
	if len(parts) == 0 {
		return "no issues"
	}
	return strings.Join(parts, ", ")
}
