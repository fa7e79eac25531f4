package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/coffyg/httpcore"
)

type LineReport struct {
	Line  int    `json:"line"`
	Input string `json:"input"`
	Valid bool   `json:"valid"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

type Report struct {
	RunID   string       `json:"run_id"`
	Source  string       `json:"source"`
	Total   int          `json:"total"`
	Valid   int          `json:"valid"`
	Invalid int          `json:"invalid"`
	Lines   []LineReport `json:"lines,omitempty"`
}

func main() {
	quiet := flag.Bool("quiet", false, "omit per-line results, print summary counts only")
	debug := flag.Bool("debug", false, "log every rejected line to stderr")
	maxLine := flag.Int("max-line", httpcore.GetMaxLineLength(), "reject header lines longer than this many bytes (0 = no cap)")
	flag.Parse()

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *debug {
		zl = zl.Level(zerolog.DebugLevel)
	} else {
		zl = zl.Level(zerolog.InfoLevel)
	}
	httpcore.SetupHTTPCore(&zl, *maxLine)

	exit := 0
	if flag.NArg() == 0 {
		report, err := check("stdin", os.Stdin, *quiet)
		if err != nil {
			zl.Error().Err(err).Msg("reading stdin")
			os.Exit(1)
		}
		if emit(report) {
			exit = 1
		}
	} else {
		for _, name := range flag.Args() {
			f, err := os.Open(name)
			if err != nil {
				zl.Error().Err(errors.Wrap(err, "open input")).Str("file", name).Msg("skipping input")
				exit = 1
				continue
			}
			report, err := check(name, f, *quiet)
			f.Close()
			if err != nil {
				zl.Error().Err(err).Str("file", name).Msg("reading input")
				exit = 1
				continue
			}
			if emit(report) {
				exit = 1
			}
		}
	}
	os.Exit(exit)
}

// check validates every non-empty line of r as a header line.
func check(source string, r io.Reader, quiet bool) (*Report, error) {
	report := &Report{RunID: uuid.New().String(), Source: source}
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lr := LineReport{Line: n, Input: line}
		h, err := httpcore.ParseHeader(line)
		if err != nil {
			lr.Error = err.Error()
			report.Invalid++
		} else {
			lr.Valid = true
			lr.Field = h.Field()
			lr.Value = h.Value()
			report.Valid++
		}
		report.Total++
		if !quiet {
			report.Lines = append(report.Lines, lr)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan input")
	}
	return report, nil
}

// emit prints the report as JSON and reports whether any line was invalid.
func emit(r *Report) bool {
	out, err := sonic.Marshal(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encoding report: %v\n", err)
		return true
	}
	fmt.Printf("%s\n", out)
	return r.Invalid > 0
}
