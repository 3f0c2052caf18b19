package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/budgetboard/internal/config"
	"github.com/theirongolddev/budgetboard/internal/dashboard"
	"github.com/theirongolddev/budgetboard/internal/logging"
	"github.com/theirongolddev/budgetboard/internal/model"
	"github.com/theirongolddev/budgetboard/internal/store"
)

var (
	flagDataFile  string
	flagEphemeral bool
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:          "budgetboard",
	Short:        "Monthly budget dashboard",
	Long:         "Track planned and actual income, expenses, bills and savings for a month. Every change is saved as you make it.",
	SilenceUsage: true,
	RunE:         runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadDotEnv)

	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data-file", "f", "", "Budget database path (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep changes in memory only")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// loadDotEnv applies a .env file from the working directory, if present.
// Variables already set in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "  Ignoring .env: %v\n", err)
	}
}

// session is an open dashboard plus the resources behind it.
type session struct {
	dash     *dashboard.Dashboard
	log      *slog.Logger
	cfg      config.Config
	location string
	closers  []func() error
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i]()
	}
}

// openSession is the shared startup path used by all commands: config,
// logger, store and dashboard. quietLogs sends logs nowhere unless a log
// file is configured, so they cannot draw over the TUI.
func openSession(quietLogs bool) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config error, using defaults: %v\n", err)
	}

	logCfg := cfg.Log
	logCfg.Level = config.LogLevel(cfg)
	if flagLogLevel != "" {
		logCfg.Level = flagLogLevel
	}
	if quietLogs && !logsToFile(logCfg.Output) {
		logCfg.Output = "discard"
	}
	logger, closeLog := logging.New(logCfg)

	s := &session{
		log:     logger,
		cfg:     cfg,
		closers: []func() error{closeLog},
	}

	var st dashboard.Store
	if flagEphemeral {
		st = store.NewMemory()
		s.location = "in memory, not saved"
	} else {
		path := flagDataFile
		if path == "" {
			path = config.DataFile(cfg)
		}
		db, err := store.Open(path)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("opening budget store: %w", err)
		}
		st = db
		s.location = db.Path()
		s.closers = append(s.closers, db.Close)
	}

	s.dash = dashboard.Open(st, logger)
	return s, nil
}

func logsToFile(output string) bool {
	switch output {
	case "", "stderr", "stdout", "discard":
		return false
	}
	return true
}

// parseItemRef resolves the <category> <id> argument pair.
func parseItemRef(catArg, idArg string) (model.Category, int, error) {
	c, err := model.ParseCategory(catArg)
	if err != nil {
		return "", 0, err
	}
	id, err := strconv.Atoi(idArg)
	if err != nil {
		return "", 0, fmt.Errorf("invalid item id %q: %w", idArg, err)
	}
	return c, id, nil
}
