// packet-generator emits generated fuzz cases as hex, one per line.
// Useful for eyeballing what a strategy/protocol combination produces and
// for piping cases into external replay tooling.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/bad-antics/nullsec-fuzzmaster/flags"
	"github.com/bad-antics/nullsec-fuzzmaster/fuzzer"
	"github.com/bad-antics/nullsec-fuzzmaster/fuzzing"
	"github.com/bad-antics/nullsec-fuzzmaster/generator"
)

var app = initApp()

func initApp() *cli.App {
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Usage = "Generate protocol fuzz cases and print them as hex"
	app.Flags = []cli.Flag{
		flags.SeedFlag,
		flags.ProtocolFlag,
		flags.StrategyFlag,
		flags.CountFlag,
		flags.CorpusFlag,
		flags.VerbosityFlag,
	}
	app.Action = generatePackets
	return app
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generatePackets(ctx *cli.Context) error {
	loglevel := slog.Level(ctx.Int(flags.VerbosityFlag.Name))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, loglevel, true)))

	protocol := generator.Protocol(ctx.String(flags.ProtocolFlag.Name))
	strategy := fuzzer.Strategy(ctx.String(flags.StrategyFlag.Name))

	session := fuzzer.NewSession(fuzzer.Config{
		Protocol: protocol,
		Strategy: strategy,
		Seed:     ctx.Int64(flags.SeedFlag.Name),
	})

	for _, path := range ctx.StringSlice(flags.CorpusFlag.Name) {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("loading corpus file %s: %w", path, err)
		}
		session.AddSeed(data)
		log.Debug("Loaded corpus seed", "file", path, "bytes", len(data))
	}

	count := ctx.Int(flags.CountFlag.Name)
	log.Info("Generating cases", "protocol", protocol, "strategy", strategy,
		"port", protocol.DefaultPort(), "count", count)

	for i := 0; i < count; i++ {
		fc := session.GenerateCase()
		fmt.Println(fuzzing.EncodeHex(fc.Data))
	}

	st := session.Stats()
	log.Info("Done", "cases", st.TotalCases, "execPerSec", fmt.Sprintf("%.0f", st.ExecPerSec))
	return nil
}
