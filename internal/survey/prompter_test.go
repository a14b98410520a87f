package survey

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr error
	}{
		{name: "Value", input: "2.5\n", want: 2.5},
		{name: "EmptyLineUsesDefault", input: "\n", want: 15.3},
		{name: "EndOfInputUsesDefault", input: "", want: 15.3},
		{name: "LastLineWithoutNewline", input: "4", want: 4},
		{name: "RetriesUntilValid", input: "abc\n-1\n2.5\n", want: 2.5},
		{name: "ZeroIsRejected", input: "0\n0\n0\n", wantErr: ErrTooManyAttempts},
		{name: "TooManyInvalid", input: "x\ny\nz\n7\n", wantErr: ErrTooManyAttempts},
		{name: "InfinityIsRejected", input: "Inf\n+Inf\ninf\n", wantErr: ErrTooManyAttempts},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tc.input), &out, 3)

			got, err := p.Float("Perimeter: ", 15.3)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPrompterFloatAsksAgainAfterInvalidAnswer(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n3\n"), &out, 3)

	got, err := p.Float("Height: ", 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Height: "))
	assert.Contains(t, out.String(), "Please enter a valid positive number.")
}

func TestPrompterCount(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("-2\n1.5\n4\n\n"), &out, 3)

	got, err := p.Count("Windows: ", 2)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = p.Count("Doors: ", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = p.Count("Openings: ", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "end of input selects the default")
}

func TestPrompterCountRejectsHugeAnswers(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("9223372036854775807\n51\n99999999999999999999\n"), &out, 3)

	_, err := p.Count("Windows: ", 2)
	require.ErrorIs(t, err, ErrTooManyAttempts)
	assert.Equal(t, 3, strings.Count(out.String(), "Please enter a whole number from 0 to 50."))
}

func TestPrompterCountAcceptsUpperBound(t *testing.T) {
	t.Parallel()

	p := NewPrompter(strings.NewReader("51\n50\n"), &bytes.Buffer{}, 3)

	got, err := p.Count("Doors: ", 1)
	require.NoError(t, err)
	assert.Equal(t, MaxCount, got)
}

func TestPrompterChoice(t *testing.T) {
	t.Parallel()

	options := []string{"Gloss paint", "Emulsion paint"}

	t.Run("RelistsOptionsAfterUnknownAnswer", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		p := NewPrompter(strings.NewReader("Unknown\nGloss paint\n"), &out, 3)

		got, err := p.Choice("Paint: ", "Emulsion paint", options)
		require.NoError(t, err)
		assert.Equal(t, "Gloss paint", got)
		assert.Contains(t, out.String(), `"Unknown" is not a known option`)
		assert.Contains(t, out.String(), "- Emulsion paint\n")
	})

	t.Run("EmptyUsesDefault", func(t *testing.T) {
		t.Parallel()

		p := NewPrompter(strings.NewReader("\n"), &bytes.Buffer{}, 3)
		got, err := p.Choice("Paint: ", "Emulsion paint", options)
		require.NoError(t, err)
		assert.Equal(t, "Emulsion paint", got)
	})

	t.Run("MatchIsCaseSensitive", func(t *testing.T) {
		t.Parallel()

		p := NewPrompter(strings.NewReader("gloss paint\n"), &bytes.Buffer{}, 1)
		_, err := p.Choice("Paint: ", "Emulsion paint", options)
		require.ErrorIs(t, err, ErrTooManyAttempts)
	})
}

func TestPrompterReadError(t *testing.T) {
	t.Parallel()

	p := NewPrompter(iotest.ErrReader(errors.New("boom")), &bytes.Buffer{}, 3)
	_, err := p.Float("Perimeter: ", 1)
	require.ErrorIs(t, err, ErrReadInput)
}

func TestNewPrompterDefaultsMaxAttempts(t *testing.T) {
	t.Parallel()

	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{}, 0)
	assert.Equal(t, DefaultMaxAttempts, p.maxAttempts)
}
