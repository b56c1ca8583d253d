package main

import (
	"flag"
	"fmt"
	"github.com/gostonefire/hashdb/internal/conf"
	"github.com/gostonefire/hashdb/internal/driver"
	"io"
	"log/slog"
	"os"
)

func main() {
	configFile := flag.String("config", "", "YAML configuration file")
	inputFile := flag.String("input", "", "Command file, standard input if empty")
	flag.Parse()

	config, err := conf.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashdb: %s\n", err)
		os.Exit(2)
	}

	logger := newLogger(config, os.Stderr)

	var in io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			logger.Error("unable to open command file", "file", *inputFile, "error", err)
			os.Exit(1)
		}
		defer func(f *os.File) { _ = f.Close() }(f)
		in = f
	}

	logger.Debug("hashdb starting", "hash_algorithm", config.HashAlgorithm, "record_size", config.RecordSize, "input", *inputFile)

	d := driver.New(config, os.Stdout, logger)
	err = d.Run(in)
	closeErr := d.Close()
	if err != nil {
		logger.Error("command processing stopped", "error", err)
		os.Exit(1)
	}
	if closeErr != nil {
		logger.Error("unable to close hash file", "error", closeErr)
		os.Exit(1)
	}
}

// newLogger - Returns a structured logger with the handler and level from config
func newLogger(config conf.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: config.Level()}
	if config.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
