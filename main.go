package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/alitto/pond"
	"github.com/jessevdk/go-flags"
	"github.com/labstack/gommon/bytes"

	"github.com/dgallion1/sockMerchant/input"
	"github.com/dgallion1/sockMerchant/logging"
	"github.com/dgallion1/sockMerchant/pairs"
	"github.com/dgallion1/sockMerchant/sequence"
)

var logIt = logging.Configure(logging.Config{})

type options struct {
	Zstd       bool   `short:"z" long:"zstd" description:"Input is zstd compressed (implied for *.zst files)"`
	NumWorkers int    `short:"n" long:"numWorkers" description:"Number of workers when several inputs are given" default:"4"`
	LogLevel   string `short:"l" long:"logLevel" description:"Log level" default:"warn"`
	LogDir     string `long:"logDir" description:"Also write JSON logs to this directory"`
	Args       struct {
		Inputs []string `positional-arg-name:"input" description:"Input files, - for stdin"`
	} `positional-args:"yes"`
}

// countPairs reads one input and returns its pair count.
func countPairs(name string, stdin io.Reader, compressed bool) (int, error) {
	rc, err := input.Open(name, stdin, compressed)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	reader := sequence.NewReader(rc, sequence.ParseInt)
	socks, err := reader.ReadAll()
	if err != nil {
		return 0, err
	}

	freq := pairs.Frequencies(socks)
	count := pairs.CountFrequencies(freq)
	logIt.Debug().
		Str("input", input.Name(name)).
		Str("consumed", bytes.Format(reader.Consumed())).
		Int("socks", len(socks)).
		Int("colors", len(freq)).
		Int("pairs", count).
		Msg("counted pairs")
	return count, nil
}

// countAll runs countPairs for every input on a worker pool and returns the
// counts in input order. The first error in input order wins.
func countAll(names []string, stdin io.Reader, compressed bool, numWorkers int) ([]int, error) {
	counts := make([]int, len(names))
	errs := make([]error, len(names))

	pool := pond.New(max(numWorkers, 1), len(names))
	var stdinMu sync.Mutex
	for i, name := range names {
		i, name := i, name
		pool.Submit(func() {
			if name == input.Stdin {
				stdinMu.Lock()
				defer stdinMu.Unlock()
			}
			counts[i], errs[i] = countPairs(name, stdin, compressed)
		})
	}
	pool.StopAndWait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", input.Name(names[i]), err)
		}
	}
	return counts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	logIt = logging.Configure(logging.Config{
		ConsoleLoggingEnabled: true,
		FileLoggingEnabled:    opts.LogDir != "",
		EncodeLogsAsJson:      false,
		Directory:             opts.LogDir,
		Filename:              "sockMerchant.log",
		MaxSize:               1, // MB
		MaxBackups:            3,
		MaxAge:                28, // days
		Level:                 opts.LogLevel,
		Out:                   stderr,
	})

	names := opts.Args.Inputs
	if len(names) == 0 {
		names = []string{input.Stdin}
	}
	for i, name := range names {
		if name == "" {
			names[i] = input.Stdin
		}
	}

	if len(names) == 1 {
		count, err := countPairs(names[0], stdin, opts.Zstd)
		if err != nil {
			fatal(err)
			return 1
		}
		fmt.Fprint(stdout, count)
		return 0
	}

	counts, err := countAll(names, stdin, opts.Zstd, opts.NumWorkers)
	if err != nil {
		fatal(err)
		return 1
	}
	for i, name := range names {
		fmt.Fprintf(stdout, "%s %d\n", input.Name(name), counts[i])
	}
	return 0
}

func fatal(err error) {
	event := logIt.Error().Err(err)
	var rerr *sequence.ReadError
	if errors.As(err, &rerr) {
		event = event.Str("kind", rerr.Kind.String()).Str("debug", fmt.Sprintf("%#v", rerr))
	}
	event.Msg("failed to count pairs")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
