package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnIndex(t *testing.T) {
	cases := map[string]int{
		"A":   0,
		"Z":   25,
		"AA":  26,
		"AB":  27,
		"BA":  52,
		"ZZ":  701,
		"AAA": 702,
		"aA":  26, // case-insensitive
		"zz":  701,
	}
	for label, want := range cases {
		t.Run(label, func(t *testing.T) {
			got, err := ColumnIndex(label)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("error cases", func(t *testing.T) {
		_, err := ColumnIndex("")
		assert.ErrorContains(t, err, "empty column label")

		_, err = ColumnIndex("A1")
		assert.ErrorContains(t, err, "invalid character")
	})
}

func TestColumnLabel(t *testing.T) {
	cases := map[int]string{
		0:   "A",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for col, want := range cases {
		assert.Equal(t, want, ColumnLabel(col))
	}

	assert.Panics(t, func() { ColumnLabel(-1) })
}

func TestColumnLabelRoundTrip(t *testing.T) {
	for col := 0; col < 1000; col++ {
		got, err := ColumnIndex(ColumnLabel(col))
		require.NoError(t, err)
		require.Equal(t, col, got)
	}
}

func TestParseCoord(t *testing.T) {
	t.Run("valid labels", func(t *testing.T) {
		cases := map[string]Coord{
			"A1":   {Row: 0, Col: 0},
			"B2":   {Row: 1, Col: 1},
			"AA10": {Row: 9, Col: 26},
			"z9":   {Row: 8, Col: 25},
		}
		for label, want := range cases {
			got, err := ParseCoord(label)
			require.NoError(t, err, "label %q", label)
			assert.Equal(t, want, got, "label %q", label)
		}
	})

	t.Run("invalid labels", func(t *testing.T) {
		for _, label := range []string{"", "A", "1", "1A", "A-1", "A1B", "A0"} {
			_, err := ParseCoord(label)
			assert.Error(t, err, "label %q should not parse", label)
		}
	})
}

func TestCoordString(t *testing.T) {
	assert.Equal(t, "A1", Coord{Row: 0, Col: 0}.String())
	assert.Equal(t, "C2", Coord{Row: 1, Col: 2}.String())
	assert.Equal(t, "AA10", Coord{Row: 9, Col: 26}.String())
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Rows: 2, Cols: 3}

	assert.True(t, b.Contains(Coord{Row: 0, Col: 0}))
	assert.True(t, b.Contains(Coord{Row: 1, Col: 2}))
	assert.False(t, b.Contains(Coord{Row: 2, Col: 0}))
	assert.False(t, b.Contains(Coord{Row: 0, Col: 3}))
	assert.False(t, b.Contains(Coord{Row: -1, Col: 0}))
}
