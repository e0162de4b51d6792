// Package fuzzer orchestrates fuzz-case generation and crash
// classification for one fuzzing session.
//
// A Session owns the monotonic case counter, the seed corpus, the crash
// list and the statistics. All state is guarded by a single mutex so
// parallel worker executors can share one session: case ids stay strictly
// increasing and crash recording is serialized. Target execution itself
// is external; the session only consumes its outcomes.
package fuzzer

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/bad-antics/nullsec-fuzzmaster/fuzzing"
	"github.com/bad-antics/nullsec-fuzzmaster/generator"
)

// Config fixes a session's policy at construction time.
type Config struct {
	// Protocol shapes Generation-strategy packets.
	Protocol generator.Protocol

	// Strategy selects how case bytes are produced.
	Strategy Strategy

	// Seed drives all randomness. 0 means seed from the current time.
	Seed int64

	// Fingerprint dedups crashes. Nil means DefaultFingerprint.
	Fingerprint Fingerprinter
}

// Session is one fuzzing session. Safe for concurrent use.
type Session struct {
	mu sync.Mutex

	protocol generator.Protocol
	strategy Strategy
	rng      *rand.Rand
	mutator  *fuzzing.Mutator

	corpus [][]byte

	totalCases    uint64
	crashes       []*Crash
	seen          map[string]struct{}
	uniqueCrashes uint64
	timeouts      uint64
	coverageBits  uint64
	startTime     time.Time
	lastCrashTime time.Time

	fingerprint Fingerprinter
}

// NewSession creates a session with the given policy. Multiple sessions
// are fully independent.
func NewSession(cfg Config) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fp := cfg.Fingerprint
	if fp == nil {
		fp = DefaultFingerprint
	}
	rng := rand.New(rand.NewSource(seed))
	return &Session{
		protocol:    cfg.Protocol,
		strategy:    cfg.Strategy,
		rng:         rng,
		mutator:     fuzzing.NewMutator(rng),
		seen:        make(map[string]struct{}),
		startTime:   time.Now(),
		fingerprint: fp,
	}
}

// AddSeed appends one seed buffer to the corpus. Seeds are copied, so the
// caller's slice stays untouched by later mutation. Meant for session
// setup; the corpus is sampled read-only afterwards.
func (s *Session) AddSeed(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.corpus = append(s.corpus, cp)
}

// CorpusSize returns the number of seeds loaded.
func (s *Session) CorpusSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.corpus)
}

// GenerateCase produces the next fuzz case. Ids are assigned from a
// single monotonic counter, so N sequential calls yield exactly 1..N.
func (s *Session) GenerateCase() *FuzzCase {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalCases++
	fc := &FuzzCase{
		ID:           s.totalCases,
		MutationType: string(s.strategy),
		ParentIndex:  -1,
	}

	// Base buffer: a uniform corpus sample, or the canonical fallback
	// seed when no corpus was loaded.
	base := fuzzing.CanonicalSeed()
	parent := -1
	if len(s.corpus) > 0 {
		parent = s.rng.Intn(len(s.corpus))
		base = s.corpus[parent]
	}

	switch s.strategy {
	case StrategyRandom:
		// The base is ignored entirely.
		fc.Data = s.mutator.RandBytes(16 + s.rng.Intn(1009))
	case StrategyGeneration:
		fc.Data = generator.Generate(s.protocol, s.rng)
	default:
		// Mutation, Grammar, Dictionary and anything future all havoc
		// the sampled base.
		fc.Data = s.mutator.Havoc(base)
		fc.ParentIndex = parent
	}
	return fc
}

// RecordCrash classifies an execution failure and appends it to the crash
// list. Severity derives from crashType; signal should be 0 for failures
// that were not signal-terminated. The reproducer is copied from the case
// so it outlives it.
func (s *Session) RecordCrash(fc *FuzzCase, crashType CrashType, signal int, output string) *Crash {
	s.mu.Lock()
	defer s.mu.Unlock()

	repro := make([]byte, len(fc.Data))
	copy(repro, fc.Data)

	crash := &Crash{
		CaseID:     fc.ID,
		Type:       crashType,
		Signal:     signal,
		Output:     output,
		Reproducer: repro,
		Severity:   crashType.Severity(),
		Time:       time.Now(),
	}
	s.crashes = append(s.crashes, crash)
	s.lastCrashTime = crash.Time

	if crashType == CrashTimeout {
		s.timeouts++
	}
	sig := s.fingerprint(crashType, repro)
	if _, ok := s.seen[sig]; !ok {
		s.seen[sig] = struct{}{}
		s.uniqueCrashes++
	}
	return crash
}

// AddCoverage accumulates coverage bits reported by an instrumented
// executor. A plain executor never calls it.
func (s *Session) AddCoverage(bits uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coverageBits += bits
}

// Crashes returns the ordered crash list as a snapshot slice. The Crash
// records themselves are immutable.
func (s *Session) Crashes() []*Crash {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Crash, len(s.crashes))
	copy(out, s.crashes)
	return out
}

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		TotalCases:    s.totalCases,
		Crashes:       uint64(len(s.crashes)),
		UniqueCrashes: s.uniqueCrashes,
		Timeouts:      s.timeouts,
		CoverageBits:  s.coverageBits,
		StartTime:     s.startTime,
		LastCrashTime: s.lastCrashTime,
	}
	if elapsed := time.Since(s.startTime).Seconds(); elapsed > 0 {
		st.ExecPerSec = float64(s.totalCases) / elapsed
	}
	return st
}

// Outcome is what an executor reports back for one case.
type Outcome struct {
	// Crashed marks the case as having triggered a failure.
	Crashed bool

	// Type classifies the failure when Crashed is set.
	Type CrashType

	// Signal is the terminating OS signal, 0 when not signal-based.
	Signal int

	// Output is diagnostic text captured from the target.
	Output string

	// CoverageBits is new coverage observed, 0 without instrumentation.
	CoverageBits uint64
}

// Executor runs a fuzz case against the target. Implementations live
// outside this module; they own process/network handling and per-case
// timeout enforcement, reporting timeouts back as CrashTimeout outcomes.
type Executor interface {
	Execute(ctx context.Context, fc *FuzzCase) (Outcome, error)
}

// RunCampaign drives generate-execute-classify until maxCases cases have
// been issued or the context is cancelled. Cancellation stops issuing new
// cases immediately; crashes recorded so far are kept.
func (s *Session) RunCampaign(ctx context.Context, exec Executor, maxCases int) error {
	for i := 0; i < maxCases; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		fc := s.GenerateCase()
		out, err := exec.Execute(ctx, fc)
		if err != nil {
			return fmt.Errorf("executing case %d: %w", fc.ID, err)
		}
		if out.CoverageBits > 0 {
			s.AddCoverage(out.CoverageBits)
		}
		if out.Crashed {
			s.RecordCrash(fc, out.Type, out.Signal, out.Output)
		}
	}
	return nil
}
