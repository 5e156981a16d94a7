// Package report carries non-fatal diagnostics out of the packer, the graph
// builder and the merger.
//
// Structural problems abort an operation with an error from package errors.
// Everything else (duplicates removed, dangling selection links, panel counts)
// is informational and flows through a [Reporter] so callers decide whether
// to log it, collect it or drop it:
//
//	rep := report.NewLogReporter(logger)
//	g := linkgraph.NewBuilder(reg, rep).Build(seq)
package report

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/initstate/pkg/errors"
)

// Severity ranks diagnostics.
type Severity int

const (
	// SeverityInfo is for summaries such as merge counts.
	SeverityInfo Severity = iota
	// SeverityWarning flags input that was handled but is probably wrong.
	SeverityWarning
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic is a single non-fatal finding.
type Diagnostic struct {
	Severity Severity
	Code     errors.Code // Empty for plain summaries
	Panel    string      // Panel the finding is about, if any
	Message  string
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	s := d.Message
	if d.Panel != "" {
		s = d.Panel + ": " + s
	}
	if d.Code != "" {
		s = string(d.Code) + ": " + s
	}
	return s
}

// Reporter receives diagnostics. Implementations must tolerate being called
// from the goroutine that runs the operation only; no operation in this
// module reports concurrently.
type Reporter interface {
	Report(Diagnostic)
}

// Infof reports an informational summary.
func Infof(r Reporter, format string, args ...any) {
	r.Report(Diagnostic{Severity: SeverityInfo, Message: fmt.Sprintf(format, args...)})
}

// Warn reports a coded warning about a panel.
func Warn(r Reporter, code errors.Code, panel, format string, args ...any) {
	r.Report(Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Panel:    panel,
		Message:  fmt.Sprintf(format, args...),
	})
}

// OrDiscard returns r, or [Discard] when r is nil.
func OrDiscard(r Reporter) Reporter {
	if r == nil {
		return Discard
	}
	return r
}

type discard struct{}

func (discard) Report(Diagnostic) {}

// Discard drops every diagnostic.
var Discard Reporter = discard{}

// LogReporter writes diagnostics to a charmbracelet logger.
// Warnings are logged at warn level, summaries at info level.
type LogReporter struct {
	logger *log.Logger
}

// NewLogReporter creates a reporter backed by l, or log.Default() when nil.
func NewLogReporter(l *log.Logger) *LogReporter {
	if l == nil {
		l = log.Default()
	}
	return &LogReporter{logger: l}
}

// Report implements Reporter.
func (r *LogReporter) Report(d Diagnostic) {
	var kv []any
	if d.Code != "" {
		kv = append(kv, "code", string(d.Code))
	}
	if d.Panel != "" {
		kv = append(kv, "panel", d.Panel)
	}
	switch d.Severity {
	case SeverityWarning:
		r.logger.Warn(d.Message, kv...)
	default:
		r.logger.Info(d.Message, kv...)
	}
}

// Collector records diagnostics in memory. It is safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Report implements Reporter.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, d)
}

// Diagnostics returns a copy of everything reported so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// WithCode returns the recorded diagnostics carrying the given code.
func (c *Collector) WithCode(code errors.Code) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.Diagnostics() {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

// Warnings returns the recorded warnings.
func (c *Collector) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range c.Diagnostics() {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

// Tee fans a diagnostic out to several reporters in order.
type Tee []Reporter

// Report implements Reporter.
func (t Tee) Report(d Diagnostic) {
	for _, r := range t {
		if r != nil {
			r.Report(d)
		}
	}
}
