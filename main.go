package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bad-antics/nullsec-fuzzmaster/config"
	"github.com/bad-antics/nullsec-fuzzmaster/fuzzer"
	"github.com/bad-antics/nullsec-fuzzmaster/generator"
	"github.com/bad-antics/nullsec-fuzzmaster/monitoring"
	"github.com/bad-antics/nullsec-fuzzmaster/utils"
)

func main() {
	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(cfg.GetLogPath())
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting fuzzmaster...")
	cfg.PrintConfig()

	session := fuzzer.NewSession(fuzzer.Config{
		Protocol: generator.Protocol(cfg.Fuzzing.Protocol),
		Strategy: fuzzer.Strategy(cfg.Fuzzing.Strategy),
		Seed:     cfg.Fuzzing.Seed,
	})

	// Seeds load once at setup; the corpus is read-only afterwards.
	for _, path := range cfg.Fuzzing.SeedFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("Skipping unreadable seed file '%s': %v", path, err)
			continue
		}
		session.AddSeed(data)
		logger.Info("Loaded seed file: %s (%d bytes)", path, len(data))
	}
	logger.Info("Corpus loaded: %d seeds", session.CorpusSize())

	var metrics *monitoring.Server
	if cfg.IsMonitoringEnabled() {
		metrics = monitoring.NewServer(cfg.GetMetricsAddress(), session)
		go func() {
			logger.Info("Metrics endpoint listening on %s", cfg.GetMetricsAddress())
			if err := metrics.Start(); err != nil && err != http.ErrServerClosed {
				logger.Error("Metrics server failed: %v", err)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Received shutdown signal, stopping case generation...")
		cancel()
	}()

	ticker := time.NewTicker(time.Duration(cfg.Monitoring.ReportInterval) * time.Second)
	defer ticker.Stop()

	logger.Info("Generating up to %d cases (protocol=%s, strategy=%s, port=%d)",
		cfg.Fuzzing.MaxCases, cfg.Fuzzing.Protocol, cfg.Fuzzing.Strategy,
		generator.Protocol(cfg.Fuzzing.Protocol).DefaultPort())

	// Target execution is external; without a wired executor this run
	// exercises generation only and reports rates.
generate:
	for i := 0; i < cfg.Fuzzing.MaxCases; i++ {
		select {
		case <-ctx.Done():
			break generate
		case <-ticker.C:
			st := session.Stats()
			logger.Info("Progress - cases: %d, exec/sec: %.0f", st.TotalCases, st.ExecPerSec)
		default:
			session.GenerateCase()
		}
	}

	if metrics != nil {
		if err := metrics.Close(); err != nil {
			logger.Error("Error closing metrics server: %v", err)
		}
	}

	utils.PrintStats(session.Stats())
	for _, crash := range session.Crashes() {
		utils.PrintCrash(crash)
		if err := utils.WriteCrashArtifact(cfg.GetOutputPath(), crash); err != nil {
			logger.Error("Failed to save crash artifact for case %d: %v", crash.CaseID, err)
		}
	}
	logger.Info("fuzzmaster stopped gracefully")
}
