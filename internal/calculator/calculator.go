package calculator

import (
	"math"
	"strconv"
)

// netAreaTolerance absorbs rounding left over when openings cover the whole wall.
const netAreaTolerance = 1e-9

type wallCalculator struct {
	table *CoverageTable
}

// New creates a Calculator backed by the given coverage table, or the default table when nil.
func New(table *CoverageTable) Calculator {
	if table == nil {
		table = DefaultCoverageTable()
	}
	return &wallCalculator{table: table}
}

func (c *wallCalculator) Compute(perimeter, height float64, windowAreas, doorAreas []float64, paintType string) (float64, error) {
	return c.ComputeRoom(RoomGeometry{
		Perimeter:   perimeter,
		Height:      height,
		WindowAreas: windowAreas,
		DoorAreas:   doorAreas,
	}, paintType)
}

func (c *wallCalculator) ComputeRoom(room RoomGeometry, paintType string) (float64, error) {
	est, err := c.Estimate(room, paintType)
	if err != nil {
		return 0, err
	}
	return est.Liters, nil
}

func (c *wallCalculator) Estimate(room RoomGeometry, paintType string) (Estimate, error) {
	rate, ok := c.table.Lookup(paintType)
	if !ok {
		return Estimate{}, &UnknownPaintTypeError{PaintType: paintType}
	}

	net, err := NetWallArea(room)
	if err != nil {
		return Estimate{}, err
	}
	if net == 0 {
		return Estimate{}, nil
	}

	return Estimate{NetWallArea: net, Liters: net * rate / 100}, nil
}

// NetWallArea validates room and returns its wall area minus every window and door.
// A result within netAreaTolerance below zero is treated as exactly zero.
func NetWallArea(room RoomGeometry) (float64, error) {
	if err := checkDimension("perimeter", room.Perimeter); err != nil {
		return 0, err
	}
	if err := checkDimension("height", room.Height); err != nil {
		return 0, err
	}

	windows, err := sumOpenings("window", room.WindowAreas)
	if err != nil {
		return 0, err
	}
	doors, err := sumOpenings("door", room.DoorAreas)
	if err != nil {
		return 0, err
	}

	net := room.Perimeter*room.Height - windows - doors
	if net < 0 && net > -netAreaTolerance {
		net = 0
	}
	if net < 0 {
		return 0, &GeometryError{Field: "net wall area", Value: net, Reason: "net wall area cannot be negative"}
	}
	return net, nil
}

func checkDimension(field string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return &GeometryError{Field: field, Value: v, Reason: "must be a positive finite number"}
	}
	return nil
}

func sumOpenings(kind string, areas []float64) (float64, error) {
	total := 0.0
	for i, area := range areas {
		if area < 0 || math.IsNaN(area) || math.IsInf(area, 0) {
			return 0, &GeometryError{
				Field:  kind + " " + strconv.Itoa(i+1) + " area",
				Value:  area,
				Reason: "opening area must be a non-negative finite number",
			}
		}
		total += area
	}
	return total, nil
}
