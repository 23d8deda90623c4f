// Command machinae solves a batch of button-press machine puzzles.
//
// Each non-empty line of the input file describes one machine: (i,j,…)
// tokens list the counters a button increments, an optional [.##.] token
// gives a light toggle target, and a {a,b,…} token gives the counter
// target vector. For every machine the command prints the minimum press
// count (or a no-solution line), then a summary with the total across
// all solved machines.
//
// Answer lines go to stdout; diagnostics go to stderr.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/machinae/machinae/lights"
	"github.com/machinae/machinae/machine"
	"github.com/machinae/machinae/press"
)

// defaultInput is used when no filename argument is given.
const defaultInput = "input.txt"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	algo := flag.String("algo", "auto", "Search variant: 'auto', 'bfs' or 'dijkstra'")
	pressCap := flag.Int("press-cap", press.DefaultPressCap, "Per-button application cap")
	maxPresses := flag.Int64("max-presses", 0, "Total press ceiling per machine (0 = unlimited)")
	showBreakdown := flag.Bool("breakdown", false, "Show per-button press counts for solved machines")
	solveLights := flag.Bool("lights", false, "Also solve light toggle patterns when present")
	level := flag.String("level", "info", "Log level")
	flag.Parse()

	if lvl, err := zerolog.ParseLevel(*level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	algorithm, err := parseAlgo(*algo)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid -algo value")
	}
	if *pressCap <= 0 {
		log.Fatal().Int("press-cap", *pressCap).Msg("-press-cap must be positive")
	}

	path := flag.Arg(0)
	if path == "" {
		path = defaultInput
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Failed to open input file")
	}
	defer f.Close()
	log.Info().Str("file", path).Msg("Reading machines")

	opts := []press.Option{press.WithAlgorithm(algorithm)}
	if *pressCap != press.DefaultPressCap {
		opts = append(opts, press.WithPressCap(*pressCap))
	}
	if *maxPresses > 0 {
		opts = append(opts, press.WithMaxPresses(*maxPresses))
	}
	if *showBreakdown {
		opts = append(opts, press.WithReturnPresses())
	}

	if err := run(f, os.Stdout, opts, *solveLights); err != nil {
		log.Fatal().Err(err).Msg("Batch failed")
	}
}

// run processes every machine line from in, writing answer lines and the
// final summary to out. Malformed lines and unreachable machines are
// reported and skipped; only I/O failures abort the batch.
func run(in io.Reader, out io.Writer, opts []press.Option, solveLights bool) error {
	var (
		total       int64
		solved      int
		machines    int
		lightsTotal int64
		lightsDone  int
		lineNo      int
	)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		m, err := machine.ParseLine(line)
		if err != nil {
			log.Warn().Err(err).Int("line", lineNo).Msg("Skipping malformed machine")

			continue
		}
		machines++

		res, err := press.MinPresses(m, opts...)
		switch {
		case errors.Is(err, press.ErrUnreachable):
			fmt.Fprintf(out, "machine %d: no solution found\n", machines)
		case err != nil:
			log.Warn().Err(err).Int("line", lineNo).Msg("Skipping unsolvable machine")
		default:
			if res.PerButton != nil {
				fmt.Fprintf(out, "machine %d: %d presses %v\n", machines, res.Cost, res.PerButton)
			} else {
				fmt.Fprintf(out, "machine %d: %d presses\n", machines, res.Cost)
			}
			total += res.Cost
			solved++
		}

		if solveLights && m.Lights != nil {
			n, err := lights.MinPresses(m)
			if err != nil {
				log.Warn().Err(err).Int("line", lineNo).Msg("Light pattern not solved")
			} else {
				fmt.Fprintf(out, "machine %d: %d light presses\n", machines, n)
				lightsTotal += n
				lightsDone++
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Fprintf(out, "total: %d presses (%d/%d machines solved)\n", total, solved, machines)
	if solveLights && lightsDone > 0 {
		fmt.Fprintf(out, "lights total: %d presses (%d machines)\n", lightsTotal, lightsDone)
	}

	return nil
}

// parseAlgo maps the -algo flag onto a press.Algorithm.
func parseAlgo(s string) (press.Algorithm, error) {
	switch s {
	case "auto":
		return press.AlgoAuto, nil
	case "bfs":
		return press.AlgoBFS, nil
	case "dijkstra":
		return press.AlgoDijkstra, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", s)
	}
}
