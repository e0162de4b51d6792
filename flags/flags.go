package flags

import (
	"github.com/urfave/cli/v2"
)

var (
	SeedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed for the RNG, (Default = RandomSeed)",
		Value: 0,
	}
	ProtocolFlag = &cli.StringFlag{
		Name:    "protocol",
		Aliases: []string{"p"},
		Usage:   "Protocol to shape packets for (http, dns, ftp, smtp, modbus, custom)",
		Value:   "http",
	}
	StrategyFlag = &cli.StringFlag{
		Name:    "strategy",
		Aliases: []string{"s"},
		Usage:   "Case generation strategy (Random, Mutation, Generation, Grammar, Dictionary)",
		Value:   "Generation",
	}
	CountFlag = &cli.IntFlag{
		Name:  "count",
		Usage: "Number of packets/cases to generate",
		Value: 10,
	}
	CorpusFlag = &cli.StringSliceFlag{
		Name:  "corpus",
		Usage: "Seed file(s) to load into the corpus before generating",
	}
	VerbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "sets the verbosity level (-4: DEBUG, 0: INFO, 4: WARN, 8: ERROR)",
		Value: 0,
	}
)
