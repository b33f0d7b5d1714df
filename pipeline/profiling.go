package pipeline

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"sort"
	"time"
)

// reportLimit caps the cumulative-cost report.
const reportLimit = 25

// Profile collects per-stage wall-clock costs for the optional run report.
// It is orthogonal to the functional pipeline: disabled, every method is a
// no-op.
type Profile struct {
	enabled bool
	entries []profileEntry
	cpu     *os.File
}

type profileEntry struct {
	stage string
	cost  time.Duration
}

// NewProfile returns a profile; pass enabled=false for the no-op variant.
func NewProfile(enabled bool) *Profile {
	return &Profile{enabled: enabled}
}

// Enabled reports whether the profile records anything.
func (p *Profile) Enabled() bool { return p.enabled }

// StartCPU additionally writes a CPU profile to path until StopCPU.
func (p *Profile) StartCPU(path string) error {
	if !p.enabled {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("starting cpu profile: %w", err)
	}
	p.cpu = f
	return nil
}

// StopCPU finishes the CPU profile started by StartCPU, if any.
func (p *Profile) StopCPU() {
	if p.cpu == nil {
		return
	}
	pprof.StopCPUProfile()
	_ = p.cpu.Close()
	p.cpu = nil
}

// Record notes the cost of one completed stage.
func (p *Profile) Record(stage string, cost time.Duration) {
	if !p.enabled {
		return
	}
	p.entries = append(p.entries, profileEntry{stage: stage, cost: cost})
}

// Report prints the recorded costs, most expensive first, capped at 25
// entries, followed by the cumulative total.
func (p *Profile) Report(w io.Writer) {
	if !p.enabled {
		return
	}
	sorted := make([]profileEntry, len(p.entries))
	copy(sorted, p.entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].cost > sorted[j].cost })
	if len(sorted) > reportLimit {
		sorted = sorted[:reportLimit]
	}
	var total time.Duration
	for _, e := range p.entries {
		total += e.cost
	}
	fmt.Fprintf(w, "stage cost report (%d stages, top %d by cumulative cost)\n", len(p.entries), reportLimit)
	for _, e := range sorted {
		fmt.Fprintf(w, "  %-28s %12s\n", e.stage, e.cost.Round(time.Microsecond))
	}
	fmt.Fprintf(w, "  %-28s %12s\n", "total", total.Round(time.Microsecond))
}
