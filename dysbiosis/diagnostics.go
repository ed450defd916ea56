package dysbiosis

import (
	"fmt"
	"sync"

	"k8s.io/klog/v2"
)

// Severity of a Diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "Info"
	case SeverityWarning:
		return "Warning"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Diagnostic is a non-fatal event raised while transforming a matrix. The only
// event currently raised is a rarefaction depth above the smallest sample
// total, in which case Depth and MinRowSum are set.
type Diagnostic struct {
	Severity  Severity
	Message   string
	Depth     int
	MinRowSum float64
}

// Reporter receives diagnostics. Implementations must be safe for concurrent
// use since BuildDataset may run rarefactions in parallel.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// KlogReporter logs diagnostics with klog, which writes to stderr.
type KlogReporter struct{}

// Report implements Reporter.
func (KlogReporter) Report(d Diagnostic) {
	if d.Severity >= SeverityWarning {
		klog.Warning(d.Message)
		return
	}
	klog.Info(d.Message)
}

// DiscardReporter drops every diagnostic.
type DiscardReporter struct{}

// Report implements Reporter.
func (DiscardReporter) Report(Diagnostic) {}

// CollectingReporter keeps every diagnostic it receives.
type CollectingReporter struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// Report implements Reporter.
func (c *CollectingReporter) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns a copy of the collected diagnostics.
func (c *CollectingReporter) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.diagnostics...)
}

func depthWarning(depth int, minRowSum float64) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Message: fmt.Sprintf("Warning: rarefaction depth (%d) is larger than the minimum number of occurrences (%g)",
			depth, minRowSum),
		Depth:     depth,
		MinRowSum: minRowSum,
	}
}
