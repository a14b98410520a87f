package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/eugenenazirov/paint-calculator/internal/calculator"
	"github.com/eugenenazirov/paint-calculator/internal/config"
	"github.com/eugenenazirov/paint-calculator/internal/report"
	"github.com/eugenenazirov/paint-calculator/internal/survey"
)

// ErrIncompleteEstimate is returned when at least one room could not be estimated.
var ErrIncompleteEstimate = errors.New("some rooms could not be estimated")

// App encapsulates the application dependencies and the terminal it talks to.
type App struct {
	cfg        config.Config
	table      *calculator.CoverageTable
	calculator calculator.Calculator
	runner     *survey.Runner
	rooms      []survey.Room
	logger     *zap.Logger

	in         io.Reader
	out        io.Writer
	runnerOpts []survey.RunnerOption
}

// Option configures App behaviour.
type Option func(*App)

// WithIO overrides where answers are read from and results are written to.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
	}
}

// WithRunnerOptions passes options through to the survey runner.
func WithRunnerOptions(opts ...survey.RunnerOption) Option {
	return func(a *App) {
		a.runnerOpts = append(a.runnerOpts, opts...)
	}
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	a := &App{
		cfg:    cfg,
		table:  calculator.DefaultCoverageTable(),
		logger: logger,
		in:     os.Stdin,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}

	rooms, err := selectRooms(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to select rooms: %w", err)
	}
	a.rooms = rooms

	a.calculator = calculator.New(a.table)
	a.runner = survey.NewRunner(a.calculator, a.table, logger, cfg.PaintType, a.runnerOpts...)

	return a, nil
}

// Survey asks for the details of every room and prints a summary at the end.
func (a *App) Survey(ctx context.Context) error {
	prompter := survey.NewPrompter(a.in, a.out, a.cfg.MaxAttempts)

	summary, err := a.runner.Interactive(ctx, prompter, a.rooms)
	if err != nil {
		return fmt.Errorf("survey: %w", err)
	}
	a.logSummary("survey completed", summary)

	if _, err := fmt.Fprintf(a.out, "\n--- Summary ---\n"); err != nil {
		return err
	}
	return report.Write(a.out, summary, a.cfg.Format)
}

// Estimate computes every configured room without prompting. It reports
// ErrIncompleteEstimate after writing the report if any room failed.
func (a *App) Estimate(ctx context.Context) error {
	summary, err := a.runner.Estimate(ctx, a.rooms)
	if err != nil {
		return fmt.Errorf("estimate: %w", err)
	}
	a.logSummary("estimate completed", summary)

	if err := report.Write(a.out, summary, a.cfg.Format); err != nil {
		return err
	}
	if failed := summary.Failed(); failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrIncompleteEstimate, failed, len(summary.Rooms))
	}
	return nil
}

// ListTypes prints the known paint types with their coverage rates.
func (a *App) ListTypes() error {
	return report.WriteRates(a.out, a.table.Rates(), a.cfg.Format)
}

func (a *App) logSummary(msg string, s survey.Summary) {
	a.logger.Info(msg,
		zap.String("run_id", s.RunID),
		zap.Int("rooms", len(s.Rooms)),
		zap.Int("failed", s.Failed()),
		zap.Float64("total_liters", s.TotalLiters),
	)
}

// selectRooms returns the configured rooms, or the built-in presets when none
// are configured, narrowed to cfg.RoomNames when given.
func selectRooms(cfg config.Config) ([]survey.Room, error) {
	if len(cfg.Rooms) > 0 {
		return survey.SelectRooms(cfg.Rooms, cfg.RoomNames)
	}
	return survey.PresetRooms(cfg.RoomNames, "")
}
