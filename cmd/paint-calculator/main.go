package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/paint-calculator/internal/application"
	"github.com/eugenenazirov/paint-calculator/internal/config"
	"github.com/eugenenazirov/paint-calculator/internal/logging"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var notifyContext = signal.NotifyContext

type cli struct {
	app         *kingpin.Application
	configFile  *string
	envFile     *string
	paintType   *string
	format      *string
	maxAttempts *int
	logLevel    *string
	rooms       *[]string

	survey   *kingpin.CmdClause
	estimate *kingpin.CmdClause
	types    *kingpin.CmdClause
}

func newCLI(stderr io.Writer) *cli {
	app := kingpin.New("paint-calculator", "Paint Calculator - estimates the liters of paint needed for the walls of each room")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	c := &cli{
		app:         app,
		configFile:  app.Flag("config", "Path to YAML or TOML configuration file").String(),
		envFile:     app.Flag("env-file", "Path to a dotenv file loaded before reading the environment").Default(".env").String(),
		paintType:   app.Flag("paint-type", "Paint type used for rooms that do not name one").String(),
		format:      app.Flag("format", "Output format").Enum("auto", "text", "table", "json", "yaml"),
		maxAttempts: app.Flag("max-attempts", "How many times an invalid answer is asked again").Default("-1").Int(),
		logLevel:    app.Flag("log-level", "Log level (debug, info, warn, error)").String(),
		rooms:       app.Flag("room", "Room to include, repeatable (defaults to every room)").Short('r').Strings(),
	}
	c.survey = app.Command("survey", "Ask for the dimensions of each room and estimate paint").Default()
	c.estimate = app.Command("estimate", "Estimate paint for the configured rooms without prompting")
	c.types = app.Command("types", "List known paint types and their coverage rates")
	return c
}

func (c *cli) overrides() *config.CLIOverrides {
	overrides := &config.CLIOverrides{
		ConfigFile: *c.configFile,
		EnvFile:    *c.envFile,
		Rooms:      *c.rooms,
	}

	if *c.paintType != "" {
		overrides.PaintType = c.paintType
	}

	if *c.format != "" {
		overrides.Format = c.format
	}

	if *c.maxAttempts >= 0 {
		overrides.MaxAttempts = c.maxAttempts
	}

	if *c.logLevel != "" {
		overrides.LogLevel = c.logLevel
	}

	return overrides
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := newCLI(stderr)
	command, err := c.app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "paint-calculator: %v\n", err)
		return exitUsage
	}

	cfg, err := config.Load(c.overrides())
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return exitUsage
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return exitUsage
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger, application.WithIO(stdin, stdout))
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		fmt.Fprintf(stderr, "%v\n", err)
		return exitUsage
	}

	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch command {
	case c.estimate.FullCommand():
		err = app.Estimate(ctx)
	case c.types.FullCommand():
		err = app.ListTypes()
	default:
		err = app.Survey(ctx)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(stderr, "%v\n", err)
		return exitError
	}
	return exitOK
}
