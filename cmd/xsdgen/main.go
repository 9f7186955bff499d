package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/jacoelho/xsdgen"
	xsdgenerrors "github.com/jacoelho/xsdgen/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xsdgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	facetsPath := fs.String("facets", "", "path to a YAML or JSON facet document")
	typeName := fs.String("type", "", "generate only the named type (default all types)")
	count := fs.Int("n", 10, "values per type")
	seed := fs.Int64("seed", 1, "base seed; each type draws from seed plus its position")
	format := fs.String("format", formatText, "output format: text, json or msgpack")
	check := fs.Bool("check", false, "re-check every value against its type and fail on mismatch")
	workers := fs.Int("workers", runtime.GOMAXPROCS(0), "types generated concurrently")
	maxLength := fs.Int("max-length", 0, "maximum length of unconstrained text (0 uses default)")
	verbose := fs.Bool("v", false, "log progress to stderr")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s --facets <types.yaml> [--type NAME] [-n 10]\n\n", os.Args[0]),
			writeln(stderr, "Generates lexical values that satisfy the facets of each declared type."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *facetsPath == "" {
		return usageError(stderr, fs, &usageErr, "error: --facets is required")
	}
	if len(fs.Args()) != 0 {
		return usageError(stderr, fs, &usageErr, "error: unexpected arguments")
	}
	if *count < 0 || *workers < 1 {
		return usageError(stderr, fs, &usageErr, "error: -n must be >= 0 and --workers >= 1")
	}
	enc, ok := encoders[*format]
	if !ok {
		return usageError(stderr, fs, &usageErr, fmt.Sprintf("error: unknown format %q", *format))
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	doc, err := xsdgen.LoadFacetFile(*facetsPath)
	if err != nil {
		_ = writef(stderr, "error loading facets: %v\n", err)
		return 1
	}
	types := doc.Types
	if *typeName != "" {
		t, ok := doc.Lookup(*typeName)
		if !ok {
			_ = writef(stderr, "error: type %q not declared in %s\n", *typeName, *facetsPath)
			return 1
		}
		types = []xsdgen.FacetType{t}
	}

	opts := xsdgen.NewOptions()
	if *maxLength > 0 {
		opts = opts.WithMaxLength(*maxLength)
	}
	j := job{
		types:   types,
		count:   *count,
		seed:    *seed,
		workers: *workers,
		check:   *check,
		opts:    opts,
		logger:  logger,
	}
	results, err := j.run(context.Background())
	if err != nil {
		_ = writeln(stderr, errorLine(err))
		return 1
	}

	if err := enc(stdout, results); err != nil {
		_ = writef(stderr, "error writing output: %v\n", err)
		return 1
	}

	if failed := reportFailures(stderr, results); failed > 0 {
		_ = writef(stderr, "%d values failed --check\n", failed)
		return 1
	}
	return 0
}

// errorLine formats a generation error, with a hint for exhausted draws.
func errorLine(err error) string {
	if xsdgenerrors.HasCode(err, xsdgenerrors.ErrExhausted) {
		return fmt.Sprintf("error: %v (try a larger --max-length or relax the facets)", err)
	}
	return fmt.Sprintf("error: %v", err)
}

func usageError(stderr io.Writer, fs *flag.FlagSet, usageErr *error, msg string) int {
	if err := writeln(stderr, msg); err != nil {
		return 1
	}
	fs.Usage()
	if *usageErr != nil {
		return 1
	}
	return 2
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
