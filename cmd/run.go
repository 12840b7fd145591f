package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/quizmaster/internal/app"
	"github.com/abhisek/quizmaster/internal/bank"
	"github.com/abhisek/quizmaster/internal/share"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runApp resolves config, loads the question bank, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	b, err := bank.LoadOrDefault(cfg.BankPath)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}
	log.WithFields(logrus.Fields{
		"bank":      b.Title,
		"questions": len(b.Questions),
		"delay":     cfg.Delay().String(),
	}).Info("starting quizmaster")

	return app.Run(app.Options{
		Bank:          *b,
		FeedbackDelay: cfg.Delay(),
		Logger:        log,
		Sharer:        share.New(share.SystemClipboard{}, log),
	})
}

// newLogger returns a debug logger writing to path, or a silent logger
// when path is empty. The TUI owns stdout and stderr.
func newLogger(path string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, func() { _ = f.Close() }, nil
}
