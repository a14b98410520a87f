package survey

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eugenenazirov/paint-calculator/internal/calculator"
)

// RoomResult is the outcome for one room. Err is set instead of Liters when
// the room could not be estimated.
type RoomResult struct {
	Room        string
	PaintType   string
	NetWallArea float64
	Liters      float64
	Err         error
}

// Summary collects the room results of one run. TotalLiters only counts rooms
// without an error.
type Summary struct {
	RunID       string
	Rooms       []RoomResult
	TotalLiters float64
}

// Line renders the result as a single human readable sentence.
func (r RoomResult) Line() string {
	if r.Err != nil {
		return fmt.Sprintf("Error in %s details: %v", r.Room, r.Err)
	}
	return fmt.Sprintf("Total paint required for %s: %.2f liters", r.Room, r.Liters)
}

// Failed reports how many rooms could not be estimated.
func (s Summary) Failed() int {
	n := 0
	for _, r := range s.Rooms {
		if r.Err != nil {
			n++
		}
	}
	return n
}

func (s *Summary) add(r RoomResult) {
	s.Rooms = append(s.Rooms, r)
	if r.Err == nil {
		s.TotalLiters += r.Liters
	}
}

// Runner estimates paint for a list of rooms, optionally asking for each
// dimension first.
type Runner struct {
	calculator       calculator.Calculator
	table            *calculator.CoverageTable
	logger           *zap.Logger
	defaultPaintType string
	newRunID         func() string
}

// RunnerOption configures Runner behaviour.
type RunnerOption func(*Runner)

// WithRunID overrides the run identifier source, primarily for tests.
func WithRunID(fn func() string) RunnerOption {
	return func(r *Runner) {
		r.newRunID = fn
	}
}

// NewRunner constructs a Runner. Rooms without a paint type use defaultPaintType.
func NewRunner(calc calculator.Calculator, table *calculator.CoverageTable, logger *zap.Logger, defaultPaintType string, opts ...RunnerOption) *Runner {
	r := &Runner{
		calculator:       calc,
		table:            table,
		logger:           logger,
		defaultPaintType: defaultPaintType,
		newRunID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Estimate computes every room without asking questions.
func (r *Runner) Estimate(ctx context.Context, rooms []Room) (Summary, error) {
	summary := Summary{RunID: r.newRunID()}
	logger := r.logger.With(zap.String("run_id", summary.RunID))

	for _, room := range rooms {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.add(r.evaluate(logger, room))
	}
	return summary, nil
}

// Interactive asks for the details of each room, using the room's values as
// defaults, and prints each room's result as soon as it is known.
// A room whose questions are answered invalidly too often is recorded as
// failed and the survey moves on.
func (r *Runner) Interactive(ctx context.Context, p *Prompter, rooms []Room) (Summary, error) {
	summary := Summary{RunID: r.newRunID()}
	logger := r.logger.With(zap.String("run_id", summary.RunID))

	for _, defaults := range rooms {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		p.printf("\n--- %s Details ---\n", defaults.Name)
		room, err := r.ask(p, defaults)
		if err != nil {
			if !errors.Is(err, ErrTooManyAttempts) {
				return summary, err
			}
			logger.Warn("room skipped", zap.String("room", defaults.Name), zap.Error(err))
			result := RoomResult{Room: defaults.Name, PaintType: room.PaintType, Err: err}
			p.printf("%s\n", result.Line())
			summary.add(result)
			continue
		}

		result := r.evaluate(logger, room)
		p.printf("%s\n", result.Line())
		summary.add(result)
	}
	return summary, nil
}

func (r *Runner) ask(p *Prompter, defaults Room) (Room, error) {
	room := Room{Name: defaults.Name, PaintType: r.paintTypeFor(defaults)}

	var err error
	room.Perimeter, err = p.Float(fmt.Sprintf("Enter the perimeter of the %s in meters (default %gm): ", room.Name, defaults.Perimeter), defaults.Perimeter)
	if err != nil {
		return room, err
	}
	room.Height, err = p.Float(fmt.Sprintf("Enter the height of the %s in meters (default %gm): ", room.Name, defaults.Height), defaults.Height)
	if err != nil {
		return room, err
	}
	room.Windows, err = askOpenings(p, "window", room.Name, defaults.Windows, largeWindow)
	if err != nil {
		return room, err
	}
	room.Doors, err = askOpenings(p, "door", room.Name, defaults.Doors, wideDoor)
	if err != nil {
		return room, err
	}

	known := r.table.KnownTypes()
	p.printf("\nAvailable paint types:\n")
	p.List(known)
	room.PaintType, err = p.Choice(fmt.Sprintf("Enter the type of paint for the %s (default '%s'): ", room.Name, room.PaintType), room.PaintType, known)
	if err != nil {
		return room, err
	}
	return room, nil
}

func askOpenings(p *Prompter, kind, roomName string, defaults []Opening, fallback Opening) ([]Opening, error) {
	count, err := p.Count(fmt.Sprintf("Enter the number of %ss in the %s (default %d): ", kind, roomName, len(defaults)), len(defaults))
	if err != nil {
		return nil, err
	}

	openings := make([]Opening, count)
	for i := range openings {
		def := fallback
		switch {
		case i < len(defaults):
			def = defaults[i]
		case len(defaults) > 0:
			def = defaults[len(defaults)-1]
		}

		openings[i].Width, err = p.Float(fmt.Sprintf("Enter the length of %s %d in meters (default %gm): ", kind, i+1, def.Width), def.Width)
		if err != nil {
			return nil, err
		}
		openings[i].Height, err = p.Float(fmt.Sprintf("Enter the height of %s %d in meters (default %gm): ", kind, i+1, def.Height), def.Height)
		if err != nil {
			return nil, err
		}
	}
	return openings, nil
}

func (r *Runner) evaluate(logger *zap.Logger, room Room) RoomResult {
	result := RoomResult{Room: room.Name, PaintType: r.paintTypeFor(room)}

	geometry, err := room.Geometry()
	var est calculator.Estimate
	if err == nil {
		est, err = r.calculator.Estimate(geometry, result.PaintType)
	}
	if err != nil {
		result.Err = err
		logger.Warn("room estimate failed",
			zap.String("room", room.Name),
			zap.String("paint_type", result.PaintType),
			zap.Error(err),
		)
		return result
	}

	result.NetWallArea = est.NetWallArea
	result.Liters = est.Liters
	logger.Debug("room estimated",
		zap.String("room", room.Name),
		zap.String("paint_type", result.PaintType),
		zap.Float64("net_wall_area", result.NetWallArea),
		zap.Float64("liters", result.Liters),
	)
	return result
}

func (r *Runner) paintTypeFor(room Room) string {
	if room.PaintType != "" {
		return room.PaintType
	}
	return r.defaultPaintType
}

