package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry is returned when room dimensions or openings cannot describe a real wall.
	ErrInvalidGeometry = errors.New("invalid room geometry")
	// ErrUnknownPaintType is returned when the paint type is not present in the coverage table.
	ErrUnknownPaintType = errors.New("unknown paint type")
	// ErrInvalidCoverageRate is returned when a coverage table entry is malformed.
	ErrInvalidCoverageRate = errors.New("coverage rates must have a name and a positive liters value")
)

// GeometryError describes which dimension made a room invalid.
type GeometryError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: %s (%s = %g)", ErrInvalidGeometry, e.Reason, e.Field, e.Value)
}

func (e *GeometryError) Unwrap() error {
	return ErrInvalidGeometry
}

// UnknownPaintTypeError carries the paint type that failed the lookup.
type UnknownPaintTypeError struct {
	PaintType string
}

func (e *UnknownPaintTypeError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownPaintType, e.PaintType)
}

func (e *UnknownPaintTypeError) Unwrap() error {
	return ErrUnknownPaintType
}
