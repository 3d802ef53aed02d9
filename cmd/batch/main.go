package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/batch"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/setup"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	input   string
	output  string
	format  string
	workers int
	dryRun  bool
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Batch run failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "voice-batch",
		Short:         "Validate or sanitize brand copy from a JSONL file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.input, "input", "", "Input JSONL file, '-' for stdin")
	root.PersistentFlags().StringVar(&opts.output, "output", "", "Output file (default stdout)")
	root.PersistentFlags().StringVar(&opts.format, "format", batch.FormatJSONL, "Output format: 'jsonl' or 'summary'")
	root.PersistentFlags().IntVar(&opts.workers, "workers", 5, "Concurrent workers")
	root.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "Parse input and report errors without processing")
	_ = root.MarkPersistentFlagRequired("input")

	root.AddCommand(
		newModeCmd(batch.ModeValidate, "Check copy against personality and platform rules", opts),
		newModeCmd(batch.ModeSanitize, "Redact banned phrases and markup from user input", opts),
	)
	return root
}

func newModeCmd(mode batch.Mode, short string, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   string(mode),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(mode, opts)
		},
	}
}

func run(mode batch.Mode, opts *options) (err error) {
	startTime := time.Now()

	ctx, cancel := setupGracefulShutdown()
	defer cancel()

	deps, err := setup.WireLocal(&log.Logger)
	if err != nil {
		return fmt.Errorf("failed to wire dependencies: %w", err)
	}

	inputFile, closeInput, err := openInput(opts.input)
	if err != nil {
		return err
	}
	defer closeInput()

	var records []batch.InputRecord
	for record := range batch.NewReader(inputFile, deps.Logger).ReadAll(ctx) {
		records = append(records, record)
	}
	log.Info().Int("total", len(records)).Msg("Input file parsed")

	if opts.dryRun {
		return dryRun(records)
	}

	outputFile, closeOutput, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOutput(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	writer, err := batch.NewWriter(outputFile, opts.format, deps.Logger)
	if err != nil {
		return err
	}

	processor, err := batch.NewProcessor(deps.Service, mode, opts.workers, deps.Logger)
	if err != nil {
		return err
	}

	for result := range processor.Process(ctx, records) {
		if err := writer.Write(result); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	summary := writer.Summary()
	log.Info().
		Str("mode", string(mode)).
		Int("total", summary.Total).
		Int("errors", summary.Errors).
		Strs("top_violations", summary.TopViolations(3)).
		Dur("duration", time.Since(startTime)).
		Msg("Batch processing complete")

	return ctx.Err()
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		log.Info().Msg("Reading from stdin")
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	log.Info().Str("file", path).Msg("Reading input file")
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	log.Info().Str("file", path).Msg("Writing to output file")
	return f, func() error {
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close output file %s: %w", path, err)
		}
		return nil
	}, nil
}

func setupGracefulShutdown() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Warn().Msg("Received interrupt signal, finishing current work...")
		cancel()
	}()

	return ctx, cancel
}

func dryRun(records []batch.InputRecord) error {
	errorCount := 0
	for _, record := range records {
		if record.Error != nil {
			log.Error().
				Int("line", record.LineNumber).
				Err(record.Error).
				Msg("Invalid record")
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d of %d records are invalid", errorCount, len(records))
	}

	log.Info().Msg("Input is valid")
	return nil
}
