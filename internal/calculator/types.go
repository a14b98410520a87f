package calculator

// RoomGeometry is the wall surface of a single room, in meters and square meters.
type RoomGeometry struct {
	Perimeter   float64
	Height      float64
	WindowAreas []float64
	DoorAreas   []float64
}

// CoverageRate is the amount of paint needed to cover 100 m² with the
// manufacturer-specified number of coats.
type CoverageRate struct {
	PaintType       string  `json:"paintType" yaml:"paint_type"`
	LitersPer100SqM float64 `json:"litersPer100SqM" yaml:"liters_per_100_sq_m"`
}

// Estimate is the paint requirement of one room together with the net wall
// area it was derived from.
type Estimate struct {
	NetWallArea float64
	Liters      float64
}

// Calculator describes the behaviour required from a paint requirement calculator.
type Calculator interface {
	Compute(perimeter, height float64, windowAreas, doorAreas []float64, paintType string) (float64, error)
	ComputeRoom(room RoomGeometry, paintType string) (float64, error)
	Estimate(room RoomGeometry, paintType string) (Estimate, error)
}
