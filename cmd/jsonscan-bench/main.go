// Command jsonscan-bench loads a file, runs stage-1 structural scanning
// over it, and reports the structural count and elapsed time. It is the
// external, out-of-scope-for-stage-1 collaborator spec.md names as a
// "command-line benchmarking harness" -- a thin shell around the library,
// never a source of stage-1 semantics.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aldenfen/jsonscan"
)

func main() {
	path := flag.String("file", "", "path to a JSON file to scan")
	runs := flag.Int("runs", 1, "number of times to repeat the scan")
	pretty := flag.Bool("pretty", false, "enable pretty logging output")
	logLevel := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flag.Parse()

	if *pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if *path == "" {
		log.Fatal().Msg("--file is required")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatal().Err(err).Str("file", *path).Msg("failed to read input file")
	}

	pj := jsonscan.NewParsedJSON(uint64(len(data)))

	var total time.Duration
	var code jsonscan.ErrorCode
	for i := 0; i < *runs; i++ {
		pj.Reset()
		start := time.Now()
		var scanErr error
		code, scanErr = jsonscan.FindStructuralBits(data, pj)
		total += time.Since(start)
		if scanErr != nil {
			log.Error().Err(scanErr).Int("run", i).Msg("scan failed")
			os.Exit(1)
		}
	}

	log.Info().
		Str("file", *path).
		Int("bytes", len(data)).
		Int("structurals", pj.NStructuralIndexes).
		Str("result", code.String()).
		Int("runs", *runs).
		Dur("total", total).
		Dur("avg", total/time.Duration(*runs)).
		Msg("scan complete")
}
