package survey

import (
	"math"
	"strconv"

	"github.com/eugenenazirov/paint-calculator/internal/calculator"
)

// Opening is a rectangular window or door cut out of a wall.
type Opening struct {
	Width  float64 `json:"width" yaml:"width" toml:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height"`
}

// Area returns the opening surface in square meters.
func (o Opening) Area() float64 {
	return o.Width * o.Height
}

// Room is a named room with its walls, openings and the paint to apply.
// An empty PaintType means the configured default.
type Room struct {
	Name      string    `json:"name" yaml:"name" toml:"name"`
	Perimeter float64   `json:"perimeter" yaml:"perimeter" toml:"perimeter"`
	Height    float64   `json:"height" yaml:"height" toml:"height"`
	PaintType string    `json:"paintType,omitempty" yaml:"paint_type,omitempty" toml:"paint_type,omitempty"`
	Windows   []Opening `json:"windows,omitempty" yaml:"windows,omitempty" toml:"windows,omitempty"`
	Doors     []Opening `json:"doors,omitempty" yaml:"doors,omitempty" toml:"doors,omitempty"`
}

// Geometry converts the room into calculator input. Every opening must have a
// positive width and height.
func (r Room) Geometry() (calculator.RoomGeometry, error) {
	windows, err := openingAreas("window", r.Windows)
	if err != nil {
		return calculator.RoomGeometry{}, err
	}
	doors, err := openingAreas("door", r.Doors)
	if err != nil {
		return calculator.RoomGeometry{}, err
	}

	return calculator.RoomGeometry{
		Perimeter:   r.Perimeter,
		Height:      r.Height,
		WindowAreas: windows,
		DoorAreas:   doors,
	}, nil
}

func openingAreas(kind string, openings []Opening) ([]float64, error) {
	areas := make([]float64, 0, len(openings))
	for i, o := range openings {
		prefix := kind + " " + strconv.Itoa(i+1)
		if !positive(o.Width) {
			return nil, &calculator.GeometryError{Field: prefix + " width", Value: o.Width, Reason: "must be a positive finite number"}
		}
		if !positive(o.Height) {
			return nil, &calculator.GeometryError{Field: prefix + " height", Value: o.Height, Reason: "must be a positive finite number"}
		}
		areas = append(areas, o.Area())
	}
	return areas, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
