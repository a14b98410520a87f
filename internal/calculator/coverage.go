package calculator

import (
	"fmt"
	"math"
)

// EmulsionPaint is the paint type used when a room does not name one.
const EmulsionPaint = "Emulsion paint"

// Three coats unless noted. Emulsion is the sum of its three individual coats
// (7 + 6.65 + 6.3).
var defaultRates = []CoverageRate{
	{PaintType: "Alkaline resisting primer to lime plaster", LitersPer100SqM: 27},
	{PaintType: "Alkaline resisting primer to brick/block work", LitersPer100SqM: 39},
	{PaintType: "Wood primer", LitersPer100SqM: 27},
	{PaintType: "Metal primer", LitersPer100SqM: 18.75},
	{PaintType: "Undercoat", LitersPer100SqM: 21},
	{PaintType: "Gloss paint", LitersPer100SqM: 24},
	{PaintType: "Eggshell paint", LitersPer100SqM: 21},
	{PaintType: EmulsionPaint, LitersPer100SqM: 19.95},
	{PaintType: "Bituminous paint", LitersPer100SqM: 30},
	{PaintType: "Sandtex-Matt", LitersPer100SqM: 63},
	{PaintType: "Staining", LitersPer100SqM: 21},
	{PaintType: "Synthetic Varnish", LitersPer100SqM: 16.5},
	{PaintType: "Aluminum", LitersPer100SqM: 18},
}

var defaultTable = mustCoverageTable(defaultRates...)

// CoverageTable maps paint types to liters per 100 m². It is read-only once built
// and safe for concurrent use.
type CoverageTable struct {
	rates []CoverageRate
	index map[string]float64
}

// NewCoverageTable builds a table from the given rates, preserving their order.
func NewCoverageTable(rates ...CoverageRate) (*CoverageTable, error) {
	if len(rates) == 0 {
		return nil, ErrInvalidCoverageRate
	}

	t := &CoverageTable{
		rates: make([]CoverageRate, 0, len(rates)),
		index: make(map[string]float64, len(rates)),
	}
	for _, rate := range rates {
		if rate.PaintType == "" || !(rate.LitersPer100SqM > 0) || math.IsInf(rate.LitersPer100SqM, 0) {
			return nil, fmt.Errorf("%w: %q = %g", ErrInvalidCoverageRate, rate.PaintType, rate.LitersPer100SqM)
		}
		if _, dup := t.index[rate.PaintType]; dup {
			return nil, fmt.Errorf("%w: duplicate paint type %q", ErrInvalidCoverageRate, rate.PaintType)
		}
		t.index[rate.PaintType] = rate.LitersPer100SqM
		t.rates = append(t.rates, rate)
	}
	return t, nil
}

// DefaultCoverageTable returns the shared table of standard paint types.
func DefaultCoverageTable() *CoverageTable {
	return defaultTable
}

// Lookup returns the liters per 100 m² for paintType. Matching is exact and case-sensitive.
func (t *CoverageTable) Lookup(paintType string) (float64, bool) {
	rate, ok := t.index[paintType]
	return rate, ok
}

// KnownTypes returns the paint types in table order.
func (t *CoverageTable) KnownTypes() []string {
	out := make([]string, len(t.rates))
	for i, rate := range t.rates {
		out[i] = rate.PaintType
	}
	return out
}

// Rates returns a copy of every entry in table order.
func (t *CoverageTable) Rates() []CoverageRate {
	out := make([]CoverageRate, len(t.rates))
	copy(out, t.rates)
	return out
}

func mustCoverageTable(rates ...CoverageRate) *CoverageTable {
	t, err := NewCoverageTable(rates...)
	if err != nil {
		panic(err)
	}
	return t
}
