package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bad-antics/nullsec-fuzzmaster/fuzzer"
)

// WriteCrashArtifact saves a crash's reproducer and a metadata sidecar
// under dir, so the failure can be replayed against the target later.
// Files are named by case id and crash type, e.g. crash_3_SegFault.bin.
func WriteCrashArtifact(dir string, c *fuzzer.Crash) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	base := fmt.Sprintf("crash_%d_%s", c.CaseID, c.Type)

	binPath := filepath.Join(dir, base+".bin")
	if err := os.WriteFile(binPath, c.Reproducer, 0644); err != nil {
		return fmt.Errorf("failed to write reproducer: %w", err)
	}

	meta := fmt.Sprintf("case_id: %d\ntype: %s\nseverity: %s\nsignal: %d\ntime: %s\noutput: %s\n",
		c.CaseID, c.Type, c.Severity, c.Signal, c.Time.Format("2006-01-02 15:04:05"), c.Output)
	metaPath := filepath.Join(dir, base+".txt")
	if err := os.WriteFile(metaPath, []byte(meta), 0644); err != nil {
		return fmt.Errorf("failed to write crash metadata: %w", err)
	}
	return nil
}
