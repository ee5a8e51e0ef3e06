// SPDX-License-Identifier: MIT

// Command seqmem runs the harmonic recognition engine over sequences given
// inline, drawn synthetically, or listed in YAML/JSON request files, and
// prints one JSON report per request.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/katalvlaran/seqmem/internal/logging"
	"github.com/katalvlaran/seqmem/request"
)

const version = "0.1.0"

// errFailed marks a run in which at least one request produced no report.
var errFailed = errors.New("one or more requests failed")

// CLIConfig holds command-line configuration.
type CLIConfig struct {
	ConfigFile  string
	Dir         string
	Match       string
	Sequence    string
	SynthSeed   string
	SynthLength int
	Workers     int
	OutputFile  string
	Verbosity   string
	LogDir      string
	ShowVersion bool

	// Inline overrides; nil when the flag was not given.
	Anchor      string
	Checkpoints []int
	Growth      *float64
	Layers      *int
	Scale       *float64
	Step        *int
	Reference   string
	AlignWindow *int
}

func main() {
	config, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if config.ShowVersion {
		fmt.Printf("seqmem v%s\n", version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "seqmem: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// parseFlags parses args into a CLIConfig. Usage and parse errors go to stderr.
func parseFlags(args []string, stderr io.Writer) (*CLIConfig, error) {
	config := &CLIConfig{}
	fs := flag.NewFlagSet("seqmem", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&config.ConfigFile, "config", "", "Request file (YAML or JSON, multi-document)")
	fs.StringVar(&config.Dir, "dir", "", "Directory of request files")
	fs.StringVar(&config.Match, "match", "*.yaml", "Glob selecting request files under -dir ('**' crosses directories)")
	fs.StringVar(&config.Sequence, "sequence", "", "Inline sequence, or @path to read a FASTA/plain file")
	fs.StringVar(&config.SynthSeed, "synth-seed", "", "Seed for a synthetic DNA sequence")
	fs.IntVar(&config.SynthLength, "synth-length", 1000, "Length of the synthetic sequence")
	fs.StringVar(&config.Anchor, "anchor", "", "Anchor: registered name, frequency, or table symbol")
	checkpoints := fs.String("checkpoints", "", "Comma-separated window lengths (default: Fibonacci up to 987)")
	growth := fs.Float64("growth", 0, "Growth constant (> 1; default φ)")
	layers := fs.Int("layers", 0, "Number of harmonic layers (default 12)")
	scale := fs.Float64("scale", 0, "Stacking scale (> 0; default 10)")
	step := fs.Int("step", 0, "Window step (default 1)")
	fs.StringVar(&config.Reference, "reference", "", "Reference sequence to align against, or @path")
	alignWindow := fs.Int("align-window", -1, "Alignment band half-width (-1 = unbounded)")
	fs.IntVar(&config.Workers, "workers", 0, "Concurrent requests (0 = number of CPUs)")
	fs.StringVar(&config.OutputFile, "output", "-", "Output file for the JSON reports ('-' = stdout)")
	fs.StringVar(&config.Verbosity, "verbosity", "normal", "Logging: quiet, normal, verbose or debug")
	fs.StringVar(&config.LogDir, "log-dir", "", "Write logs to <dir>/<session>-seqmem.log instead of stderr")
	fs.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "seqmem - harmonic memory recognition over symbol sequences\n\n")
		fmt.Fprintf(stderr, "Usage: seqmem [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  seqmem -sequence ACGTTGCAAGCT -checkpoints 1,2,3,5\n")
		fmt.Fprintf(stderr, "  seqmem -synth-seed run-1 -synth-length 5000 -anchor verdi\n")
		fmt.Fprintf(stderr, "  seqmem -sequence @sample.fa -reference @ref.fa -align-window 8\n")
		fmt.Fprintf(stderr, "  seqmem -dir requests -match '**.yaml' -workers 4 -output reports.json\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Only flags given explicitly override request defaults.
	var perr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "checkpoints":
			config.Checkpoints, perr = parseInts(*checkpoints)
		case "growth":
			config.Growth = growth
		case "layers":
			config.Layers = layers
		case "scale":
			config.Scale = scale
		case "step":
			config.Step = step
		case "align-window":
			config.AlignWindow = alignWindow
		}
	})
	if perr != nil {
		fmt.Fprintf(stderr, "invalid -checkpoints: %v\n", perr)
		return nil, perr
	}

	return config, nil
}

func parseInts(s string) ([]int, error) {
	out := []int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", part, err)
		}
		out = append(out, n)
	}

	return out, nil
}

// run gathers requests, executes them and writes the JSON reports.
func run(ctx context.Context, config *CLIConfig, stdout io.Writer) error {
	level, err := logging.ParseLevel(config.Verbosity)
	if err != nil {
		return err
	}
	log := logging.New("seqmem", os.Stderr, level)
	if config.LogDir != "" {
		var ferr error
		log, ferr = logging.NewFile(config.LogDir, "seqmem", level)
		if ferr != nil {
			log.Warnf("file logging unavailable, using stderr: %v", ferr)
		}
	}
	defer log.Close()
	log.Debugf("session %s", logging.SessionID())

	reqs, err := gatherRequests(config)
	if err != nil {
		return fmt.Errorf("failed to load requests: %w", err)
	}
	for _, r := range reqs {
		if verr := r.Validate(); verr != nil {
			return fmt.Errorf("invalid request: %w", verr)
		}
	}
	log.Infof("running %d request(s)", len(reqs))

	resps, execErr := request.ExecuteAll(ctx, reqs, config.Workers, log.With("request"))

	if err := writeOutput(config.OutputFile, stdout, resps); err != nil {
		return err
	}
	if execErr != nil {
		return execErr
	}
	for _, r := range resps {
		if r.Failed() {
			return errFailed
		}
	}

	return nil
}

// gatherRequests collects requests from -config, -dir/-match and the inline
// flags, in that order.
func gatherRequests(config *CLIConfig) ([]request.Request, error) {
	var reqs []request.Request

	if config.ConfigFile != "" {
		loaded, err := request.Load(config.ConfigFile)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, loaded...)
	}
	if config.Dir != "" {
		loaded, err := request.LoadAll(config.Dir, config.Match)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, loaded...)
	}

	if config.Sequence != "" || config.SynthSeed != "" {
		inline := request.Request{Name: "inline"}
		text, err := readText(config.Sequence)
		if err != nil {
			return nil, err
		}
		inline.Sequence = text
		if config.SynthSeed != "" {
			inline.Synth = &request.Synth{Seed: config.SynthSeed, Length: config.SynthLength}
		}
		reqs = append(reqs, inline)
	}

	if len(reqs) == 0 {
		return nil, errors.New("nothing to do: give -sequence, -synth-seed, -config or -dir")
	}

	reference, err := readText(config.Reference)
	if err != nil {
		return nil, err
	}

	// Inline overrides apply to every request.
	for i := range reqs {
		if reference != "" {
			reqs[i].Reference = reference
		}
		if config.AlignWindow != nil {
			reqs[i].AlignWindow = config.AlignWindow
		}
		if config.Anchor != "" {
			reqs[i].Anchor = config.Anchor
		}
		if config.Checkpoints != nil {
			reqs[i].Checkpoints = config.Checkpoints
		}
		if config.Growth != nil {
			reqs[i].Growth = config.Growth
		}
		if config.Layers != nil {
			reqs[i].Layers = config.Layers
		}
		if config.Scale != nil {
			reqs[i].StackingScale = config.Scale
		}
		if config.Step != nil {
			reqs[i].Step = config.Step
		}
	}

	return reqs, nil
}

// readText returns v, or the contents of the file it names when v starts with '@'.
func readText(v string) (string, error) {
	path, ok := strings.CutPrefix(v, "@")
	if !ok {
		return v, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func writeOutput(path string, stdout io.Writer, resps []request.Response) error {
	data, err := json.MarshalIndent(resps, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
