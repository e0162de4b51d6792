package utils

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/bad-antics/nullsec-fuzzmaster/fuzzer"
	"github.com/bad-antics/nullsec-fuzzmaster/fuzzing"
)

// reproducerPreview caps how much of a reproducer gets hex-dumped per
// crash line.
const reproducerPreview = 64

var severityColors = map[fuzzer.Severity]*color.Color{
	fuzzer.SeverityCritical: color.New(color.FgRed, color.Bold),
	fuzzer.SeverityHigh:     color.New(color.FgRed),
	fuzzer.SeverityMedium:   color.New(color.FgYellow),
	fuzzer.SeverityLow:      color.New(color.FgWhite),
}

// PrintCrash prints crash details with the severity colored by rank
func PrintCrash(c *fuzzer.Crash) {
	fmt.Printf("=== Crash (case #%d) ===\n", c.CaseID)
	fmt.Printf("  Type: %s\n", c.Type)

	sev := severityColors[c.Severity]
	fmt.Printf("  Severity: %s\n", sev.Sprint(c.Severity))

	if c.Signal != 0 {
		fmt.Printf("  Signal: %d\n", c.Signal)
	}
	if c.Output != "" {
		fmt.Printf("  Output: %s\n", c.Output)
	}

	repro := c.Reproducer
	truncated := ""
	if len(repro) > reproducerPreview {
		repro = repro[:reproducerPreview]
		truncated = fmt.Sprintf(" ... (%d bytes total)", len(c.Reproducer))
	}
	fmt.Printf("  Reproducer: %s%s\n", fuzzing.EncodeHex(repro), truncated)
	fmt.Printf("  Recorded: %s\n", c.Time.Format("2006-01-02 15:04:05"))
}

// PrintStats prints a session statistics summary
func PrintStats(st fuzzer.Stats) {
	fmt.Println("=== Session Statistics ===")
	fmt.Printf("  Total cases: %d\n", st.TotalCases)
	fmt.Printf("  Crashes: %d (%d unique)\n", st.Crashes, st.UniqueCrashes)
	fmt.Printf("  Timeouts: %d\n", st.Timeouts)
	fmt.Printf("  Coverage bits: %d\n", st.CoverageBits)
	fmt.Printf("  Exec/sec: %.1f\n", st.ExecPerSec)
	fmt.Printf("  Runtime: %s\n", st.Runtime().Round(time.Second))
	if !st.LastCrashTime.IsZero() {
		fmt.Printf("  Last crash: %s\n", st.LastCrashTime.Format("15:04:05"))
	}
}
