package pipeline

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

// TestProfile_Disabled records and reports nothing
func TestProfile_Disabled(t *testing.T) {
	p := NewProfile(false)
	p.Record("network conversion", time.Second)

	var buf bytes.Buffer
	p.Report(&buf)
	if buf.Len() != 0 {
		t.Errorf("disabled profile wrote a report: %q", buf.String())
	}
	if err := p.StartCPU("/nonexistent/profile.pprof"); err != nil {
		t.Errorf("disabled StartCPU must be a no-op, got %v", err)
	}
}

// TestProfile_ReportSortedAndCapped prints the most expensive stages first,
// at most 25 of them.
func TestProfile_ReportSortedAndCapped(t *testing.T) {
	p := NewProfile(true)
	for i := 0; i < 30; i++ {
		p.Record(fmt.Sprintf("stage-%02d", i), time.Duration(i+1)*time.Millisecond)
	}

	var buf bytes.Buffer
	p.Report(&buf)
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header + 25 entries + total
	if len(lines) != 27 {
		t.Fatalf("report has %d lines, want 27:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "stage-29") {
		t.Errorf("most expensive stage must come first, got %q", lines[1])
	}
	if strings.Contains(out, "stage-00") {
		t.Error("entries beyond the cap must be dropped")
	}
	if !strings.Contains(lines[len(lines)-1], "total") {
		t.Errorf("report must end with the total, got %q", lines[len(lines)-1])
	}
}

// TestProfile_CPUProfileLifecycle writes a profile file into the workspace
func TestProfile_CPUProfileLifecycle(t *testing.T) {
	p := NewProfile(true)
	path := t.TempDir() + "/profile.pprof"
	if err := p.StartCPU(path); err != nil {
		t.Fatalf("StartCPU: %v", err)
	}
	p.StopCPU()
	p.StopCPU() // second stop is harmless
}
