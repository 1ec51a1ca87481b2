package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/vocab/internal/api"
	"github.com/kumarlokesh/vocab/internal/config"
	"github.com/kumarlokesh/vocab/internal/logging"
	"github.com/kumarlokesh/vocab/internal/trie"
	"github.com/kumarlokesh/vocab/internal/wordlist"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log configuration: %v\n", err)
		os.Exit(1)
	}

	v, err := loadVocab(cfg.Dictionaries, logger)
	if err != nil {
		logger.Fatal().Err(err).Strs("dictionaries", cfg.Dictionaries).Msg("Failed to load dictionaries")
	}

	server := api.NewServer(cfg.Addr(), api.NewSyncVocab(v), logger)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("Starting vocabulary server")
		serverErrors <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			logger.Fatal().Err(err).Msg("Server error")
		}
		return
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
		return
	}
	logger.Info().Msg("Server stopped")
}

// loadVocab builds the vocabulary from the configured word lists. No word
// lists means the server starts empty and is filled through the API.
func loadVocab(paths []string, logger zerolog.Logger) (*trie.Vocab, error) {
	if len(paths) == 0 {
		logger.Warn().Msg("No dictionaries configured, starting with an empty vocabulary")
		return trie.New(nil), nil
	}

	start := time.Now()
	v, err := wordlist.LoadVocab(paths...)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Strs("dictionaries", paths).
		Int("words", v.Len()).
		Dur("duration", time.Since(start)).
		Msg("Vocabulary loaded")
	return v, nil
}
