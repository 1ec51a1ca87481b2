package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kumarlokesh/vocab/internal/config"
	"github.com/kumarlokesh/vocab/internal/logging"
	"github.com/kumarlokesh/vocab/internal/wordlist"
)

// ErrMissingArgument is returned when a required positional argument is absent
var ErrMissingArgument = errors.New("missing argument")

// stringList collects a repeatable string flag
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the CLI. Results go to stdout, logs to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("vocab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to config file")
	var extra stringList
	fs.Var(&extra, "extend", "Additional word list to append (repeatable)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: vocab [flags] <dictionary> <search-term>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return err
	}
	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid log configuration: %v\n", err)
		return err
	}

	if fs.NArg() < 1 {
		err := fmt.Errorf("%w: missing dictionary for 1st arg", ErrMissingArgument)
		logger.Error().Err(err).Msg("Invalid arguments")
		return err
	}
	if fs.NArg() < 2 {
		err := fmt.Errorf("%w: missing search term for 2nd arg", ErrMissingArgument)
		logger.Error().Err(err).Msg("Invalid arguments")
		return err
	}
	dictionary := fs.Arg(0)
	searchTerm := fs.Arg(1)

	paths := append([]string{dictionary}, extra...)
	start := time.Now()
	v, err := wordlist.LoadVocab(paths...)
	if err != nil {
		logger.Error().Err(err).Strs("paths", paths).Msg("Failed to load dictionary")
		return err
	}
	logger.Debug().
		Strs("paths", paths).
		Int("words", v.Len()).
		Dur("duration", time.Since(start)).
		Msg("Vocabulary built")

	fmt.Fprintf(stdout, "Searching for word: %s\n", searchTerm)
	if pos, ok := v.Lookup(searchTerm); ok {
		fmt.Fprintf(stdout, "Found word at index %d!\n", pos)
	} else {
		fmt.Fprintln(stdout, "Word not found")
	}
	return nil
}
