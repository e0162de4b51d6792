package fuzzer

import (
	"encoding/hex"
	"time"

	"golang.org/x/crypto/sha3"
)

// CrashType is the closed taxonomy of failure kinds the classifier can
// assign a severity to.
type CrashType int

const (
	CrashUnknown CrashType = iota
	CrashTimeout
	CrashConnectionReset
	CrashSegFault
	CrashHeapCorruption
	CrashStackOverflow
	CrashAssertionFailed
)

func (t CrashType) String() string {
	switch t {
	case CrashTimeout:
		return "Timeout"
	case CrashConnectionReset:
		return "ConnectionReset"
	case CrashSegFault:
		return "SegFault"
	case CrashHeapCorruption:
		return "HeapCorruption"
	case CrashStackOverflow:
		return "StackOverflow"
	case CrashAssertionFailed:
		return "AssertionFailed"
	default:
		return "Unknown"
	}
}

// Severity ranks recorded crashes for triage.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "Critical"
	case SeverityHigh:
		return "High"
	case SeverityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// severityByCrashType is the total severity mapping. Every CrashType must
// have an entry; Severity() falls back to Low for values outside the
// taxonomy.
var severityByCrashType = map[CrashType]Severity{
	CrashHeapCorruption:  SeverityCritical,
	CrashStackOverflow:   SeverityCritical,
	CrashSegFault:        SeverityHigh,
	CrashAssertionFailed: SeverityMedium,
	CrashTimeout:         SeverityLow,
	CrashConnectionReset: SeverityLow,
	CrashUnknown:         SeverityLow,
}

// Severity derives the triage rank from the crash type alone.
func (t CrashType) Severity() Severity {
	return severityByCrashType[t]
}

// Crash is one observed failure. Appended to the session's ordered crash
// list and never mutated afterwards.
type Crash struct {
	// CaseID references the FuzzCase that triggered the failure.
	CaseID uint64

	// Type is the classified failure kind.
	Type CrashType

	// Signal is the terminating OS signal, 0 when the failure was not
	// signal-based (timeouts, resets). The executor supplies it; nothing
	// here infers signal numbers from the crash type.
	Signal int

	// Output is free-text diagnostics captured from the executor.
	Output string

	// Reproducer is a private copy of the triggering case's data, valid
	// even after the FuzzCase itself is discarded.
	Reproducer []byte

	// Severity is derived from Type, never set independently.
	Severity Severity

	// Time records when the crash was classified.
	Time time.Time
}

// Fingerprinter reduces a crash to a dedup signature. Two crashes with the
// same signature count as one unique crash. Pluggable because faithful
// deduplication needs coverage data this engine does not collect.
type Fingerprinter func(crashType CrashType, reproducer []byte) string

// DefaultFingerprint hashes the crash type together with the reproducer
// bytes (SHA3-256, truncated to 8 bytes).
func DefaultFingerprint(crashType CrashType, reproducer []byte) string {
	h := sha3.New256()
	h.Write([]byte{byte(crashType)})
	h.Write(reproducer)
	return hex.EncodeToString(h.Sum(nil)[:8])
}
