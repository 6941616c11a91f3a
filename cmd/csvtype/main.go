// Command csvtype parses delimited text and prints one JSON object per row.
//
// Usage:
//
//	csvtype [--separator=,|tab|auto] [--strict [--on-bad-line=error|warn|skip]]
//	        [--generate-keys] [--skip-empty] [FILE]
//
// With no FILE, or when FILE is -, input is read from stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"github.com/go-json-experiment/json"
	flags "github.com/jessevdk/go-flags"
	"github.com/shapestone/shape-typedcsv/pkg/csv"
)

type options struct {
	Separator    string `long:"separator" short:"s" default:"," description:"Field separator: a single character, \"tab\", or \"auto\" to detect it from the input."`
	Strict       bool   `long:"strict" description:"Fail on data lines whose field count differs from the header."`
	OnBadLine    string `long:"on-bad-line" default:"error" choice:"error" choice:"warn" choice:"skip" description:"With --strict, fail on ragged lines, log them and keep going, or drop them."`
	GenerateKeys bool   `long:"generate-keys" description:"Name blank headers and excess fields __N instead of dropping them."`
	SkipEmpty    bool   `long:"skip-empty" description:"Leave empty fields out of rows."`

	Args struct {
		File string `positional-arg-name:"FILE" description:"Input file; stdin when empty or -."`
	} `positional-args:"yes"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("csvtype: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return nil
		}
		return err
	}

	data, err := readInput(opts.Args.File, stdin)
	if err != nil {
		return err
	}

	parseOpts, err := opts.parseOptions(string(data))
	if err != nil {
		return err
	}

	rows, err := csv.ParseWithOptions(string(data), parseOpts)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	for _, row := range rows {
		b, err := json.Marshal(row, jsonOptions...)
		if err != nil {
			return fmt.Errorf("encode row: %w", err)
		}
		w.Write(b)
		w.WriteByte('\n')
	}
	return w.Flush()
}

func readInput(file string, stdin io.Reader) ([]byte, error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// parseOptions maps command line flags to csv.Options.
// The sample is only consulted for --separator=auto.
func (o options) parseOptions(sample string) (csv.Options, error) {
	sep, err := resolveSeparator(o.Separator, sample)
	if err != nil {
		return csv.Options{}, err
	}

	opts := csv.DefaultOptions(sep)
	opts.Strict = o.Strict
	switch o.OnBadLine {
	case "warn":
		opts.OnBadLine = csv.BadLineModeWarn
		opts.WarningCallback = func(_ int, message string) {
			log.Printf("warning: %s", message)
		}
	case "skip":
		opts.OnBadLine = csv.BadLineModeSkip
	}
	opts.GenerateMissingKeys = o.GenerateKeys
	opts.SkipEmptyValues = o.SkipEmpty
	return opts, nil
}

// jsonOptions sort object keys and write Float through Value.String so
// integral floats keep their ".0" and re-infer as Float.
var jsonOptions = []json.Options{
	json.Deterministic(true),
	json.WithMarshalers(json.MarshalFunc(func(f csv.Float) ([]byte, error) {
		return []byte(f.String()), nil
	})),
}

func resolveSeparator(value, sample string) (rune, error) {
	switch value {
	case "auto":
		return csv.DetectSeparator(sample), nil
	case "tab", `\t`:
		return '\t', nil
	}

	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("separator must be a single character, \"tab\" or \"auto\": %q", value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}
