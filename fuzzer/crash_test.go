package fuzzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bad-antics/nullsec-fuzzmaster/generator"
)

func TestSeverityDerivation(t *testing.T) {
	tests := []struct {
		crashType CrashType
		want      Severity
	}{
		{CrashHeapCorruption, SeverityCritical},
		{CrashStackOverflow, SeverityCritical},
		{CrashSegFault, SeverityHigh},
		{CrashAssertionFailed, SeverityMedium},
		{CrashTimeout, SeverityLow},
		{CrashConnectionReset, SeverityLow},
		{CrashUnknown, SeverityLow},
	}
	for _, tt := range tests {
		t.Run(tt.crashType.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.crashType.Severity())
		})
	}
}

// TestSeverityMappingTotal guards the lookup table against taxonomy
// additions that forget a severity entry.
func TestSeverityMappingTotal(t *testing.T) {
	for ct := CrashUnknown; ct <= CrashAssertionFailed; ct++ {
		_, ok := severityByCrashType[ct]
		assert.True(t, ok, "crash type %s has no severity entry", ct)
	}
}

func TestRecordCrash(t *testing.T) {
	s := newTestSession(StrategyMutation, generator.ProtocolHTTP)
	s.AddSeed([]byte("crashing input"))

	var target *FuzzCase
	for i := 0; i < 3; i++ {
		target = s.GenerateCase()
	}
	require.Equal(t, uint64(3), target.ID)

	crash := s.RecordCrash(target, CrashSegFault, 11, "SIGSEGV near 0x0")

	assert.Equal(t, uint64(3), crash.CaseID)
	assert.Equal(t, SeverityHigh, crash.Severity)
	assert.Equal(t, 11, crash.Signal)
	assert.Equal(t, target.Data, crash.Reproducer)
	assert.False(t, crash.Time.IsZero())

	st := s.Stats()
	assert.Equal(t, uint64(1), st.Crashes)
	assert.Equal(t, uint64(1), st.UniqueCrashes)
	assert.Equal(t, crash.Time, st.LastCrashTime)
}

func TestReproducerIsAnIndependentCopy(t *testing.T) {
	s := newTestSession(StrategyMutation, generator.ProtocolHTTP)
	fc := s.GenerateCase()

	crash := s.RecordCrash(fc, CrashHeapCorruption, 6, "double free")
	require.Equal(t, fc.Data, crash.Reproducer)

	// Clobbering the case buffer must not reach the reproducer.
	saved := append([]byte(nil), crash.Reproducer...)
	for i := range fc.Data {
		fc.Data[i] = 0xAA
	}
	assert.Equal(t, saved, crash.Reproducer)
}

func TestTimeoutCrashHasNoSignal(t *testing.T) {
	s := newTestSession(StrategyMutation, generator.ProtocolHTTP)
	fc := s.GenerateCase()

	crash := s.RecordCrash(fc, CrashTimeout, 0, "no response after 5s")
	assert.Equal(t, SeverityLow, crash.Severity)
	assert.Zero(t, crash.Signal)
	assert.Equal(t, uint64(1), s.Stats().Timeouts)
}

func TestCrashDeduplication(t *testing.T) {
	s := newTestSession(StrategyMutation, generator.ProtocolHTTP)
	fc := s.GenerateCase()

	s.RecordCrash(fc, CrashSegFault, 11, "first sighting")
	s.RecordCrash(fc, CrashSegFault, 11, "same signature again")
	// Same reproducer but a different crash type is a distinct signature.
	s.RecordCrash(fc, CrashHeapCorruption, 6, "different type")

	st := s.Stats()
	assert.Equal(t, uint64(3), st.Crashes)
	assert.Equal(t, uint64(2), st.UniqueCrashes)
}

func TestCustomFingerprinter(t *testing.T) {
	s := NewSession(Config{
		Strategy: StrategyMutation,
		Seed:     1,
		Fingerprint: func(crashType CrashType, _ []byte) string {
			// Collapse everything of one type into one bucket.
			return crashType.String()
		},
	})

	a := s.GenerateCase()
	b := s.GenerateCase()
	s.RecordCrash(a, CrashSegFault, 11, "")
	s.RecordCrash(b, CrashSegFault, 11, "")
	assert.Equal(t, uint64(1), s.Stats().UniqueCrashes)
}

func TestCrashListOrdered(t *testing.T) {
	s := newTestSession(StrategyMutation, generator.ProtocolHTTP)

	for i := 0; i < 5; i++ {
		fc := s.GenerateCase()
		s.RecordCrash(fc, CrashAssertionFailed, 0, "assert")
	}
	crashes := s.Crashes()
	require.Len(t, crashes, 5)
	for i := 1; i < len(crashes); i++ {
		assert.Greater(t, crashes[i].CaseID, crashes[i-1].CaseID)
	}
}

func TestDefaultFingerprintStable(t *testing.T) {
	repro := []byte{1, 2, 3}
	a := DefaultFingerprint(CrashSegFault, repro)
	b := DefaultFingerprint(CrashSegFault, repro)
	c := DefaultFingerprint(CrashTimeout, repro)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16, "8 truncated hash bytes, hex encoded")
}
