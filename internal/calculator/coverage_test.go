package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCoverageTable(t *testing.T) {
	t.Parallel()

	want := map[string]float64{
		"Alkaline resisting primer to lime plaster":     27,
		"Alkaline resisting primer to brick/block work": 39,
		"Wood primer":       27,
		"Metal primer":      18.75,
		"Undercoat":         21,
		"Gloss paint":       24,
		"Eggshell paint":    21,
		"Emulsion paint":    19.95,
		"Bituminous paint":  30,
		"Sandtex-Matt":      63,
		"Staining":          21,
		"Synthetic Varnish": 16.5,
		"Aluminum":          18,
	}

	table := DefaultCoverageTable()
	require.Len(t, table.KnownTypes(), len(want))
	for paintType, liters := range want {
		got, ok := table.Lookup(paintType)
		require.True(t, ok, "missing %q", paintType)
		assert.Equal(t, liters, got, paintType)
	}
}

func TestCoverageTableLookupIsExact(t *testing.T) {
	t.Parallel()

	table := DefaultCoverageTable()
	for _, name := range []string{"", "Unknown", "gloss paint", "Gloss paint ", " Gloss paint", "Aluminium"} {
		_, ok := table.Lookup(name)
		assert.False(t, ok, "unexpected match for %q", name)
	}
}

func TestCoverageTableKnownTypesKeepsOrderAndCopies(t *testing.T) {
	t.Parallel()

	table := DefaultCoverageTable()
	types := table.KnownTypes()
	assert.Equal(t, "Alkaline resisting primer to lime plaster", types[0])
	assert.Equal(t, "Aluminum", types[len(types)-1])

	types[0] = "mutated"
	assert.Equal(t, "Alkaline resisting primer to lime plaster", table.KnownTypes()[0])

	rates := table.Rates()
	rates[0].LitersPer100SqM = 1
	got, _ := table.Lookup("Alkaline resisting primer to lime plaster")
	assert.Equal(t, 27.0, got)
}

func TestNewCoverageTableRejectsInvalidRates(t *testing.T) {
	t.Parallel()

	cases := map[string][]CoverageRate{
		"empty":     nil,
		"blankName": {{PaintType: "", LitersPer100SqM: 10}},
		"zeroRate":  {{PaintType: "A", LitersPer100SqM: 0}},
		"negative":  {{PaintType: "A", LitersPer100SqM: -3}},
		"nan":       {{PaintType: "A", LitersPer100SqM: math.NaN()}},
		"infinite":  {{PaintType: "A", LitersPer100SqM: math.Inf(1)}},
		"duplicate": {{PaintType: "A", LitersPer100SqM: 1}, {PaintType: "A", LitersPer100SqM: 2}},
	}

	for name, rates := range cases {
		rates := rates
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := NewCoverageTable(rates...)
			require.ErrorIs(t, err, ErrInvalidCoverageRate)
		})
	}
}
