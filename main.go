package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mortgage-parser/config"
	"mortgage-parser/normalize"
	"mortgage-parser/repository"
	"mortgage-parser/service"
)

// app holds everything the subcommands share once flags and config are read.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	service *service.MortgageService
	redis   *repository.RedisCache
	closers []func() error
}

func main() {
	var (
		cfgFile string
		debug   bool
		noColor bool
		a       app
	)

	rootCmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Parse mortgage commands and compute monthly payments",
		Long: `mortgage reads commands such as

  price 450000, down 15%, rate 7%, term 30

and prints the down payment, loan amount, monthly payment, total paid and
total interest. Without a subcommand it starts an interactive prompt.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			return a.setup(cfgFile, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), &a)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to a TOML or YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newCalcCmd(&a), newServeCmd(&a))

	err := rootCmd.Execute()
	a.close()
	if err != nil {
		// calc already reported the pipeline error
		if !errors.Is(err, errCalculationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newCalcCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <command>",
		Short: "Compute a single mortgage command and exit",
		Example: `  mortgage calc "price 450000, down 15%, rate 7%, term 30"
  mortgage calc 450000 15 7 30`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			raw := strings.Join(args, " ")
			quote, err := a.service.Quote(cmd.Context(), raw)
			if err != nil {
				printError(out, normalize.Input(raw), err)
				return errCalculationFailed
			}
			printSummary(out, quote)
			return nil
		},
	}
}

func (a *app) setup(cfgFile string, debug bool) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cfg.Log.Level, debug)

	var cache repository.CacheRepository
	switch cfg.Cache.Backend {
	case "redis":
		a.redis = repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.TTL.Duration, a.logger)
		a.closers = append(a.closers, a.redis.Close)
		cache = a.redis
	default:
		cache = repository.NewMemoryCache(cfg.Cache.TTL.Duration)
	}

	history := repository.NewQuoteRepositoryMemory(cfg.History.Size)
	a.service = service.NewMortgageService(cache, history, a.logger)
	return nil
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn("error closing resource", "error", err)
		}
	}
	a.closers = nil
}

func newLogger(level string, debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
