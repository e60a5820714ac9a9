package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/sim"
)

func TestParse(t *testing.T) {
	d, err := Parse("1.b\n . \n")
	require.NoError(t, err)

	assert.Equal(t, 3, d.Width)
	assert.Equal(t, 2, d.Height)
	assert.Equal(t, []Wall{
		{Col: 0, Row: 0, Style: sim.StyleFull},
		{Col: 2, Row: 0, Style: sim.StyleTopLeft},
	}, d.Walls)
	assert.Equal(t, []core.Point{core.Pt(1, 0), core.Pt(1, 1)}, d.Pickups)
}

func TestParseEveryStyleCode(t *testing.T) {
	d, err := Parse("123456789ab.")
	require.NoError(t, err)
	require.Len(t, d.Walls, 11)
	for i, w := range d.Walls {
		assert.Equal(t, sim.Style(i), w.Style, "column %d", w.Col)
	}
}

func TestParseIgnoresUnknownCharacters(t *testing.T) {
	d, err := Parse("x.#c0 ")
	require.NoError(t, err)
	assert.Empty(t, d.Walls)
	assert.Len(t, d.Pickups, 1)
	assert.Equal(t, 6, d.Width)
}

func TestParseRaggedRows(t *testing.T) {
	d, err := Parse("1\n1.1.\n.")
	require.NoError(t, err)
	assert.Equal(t, 4, d.Width)
	assert.Equal(t, 3, d.Height)
	assert.True(t, d.Contains(3, 1))
	assert.False(t, d.Contains(4, 1))
	assert.False(t, d.Contains(0, 3))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   error
	}{
		{"empty", "", ErrEmptyLayout},
		{"whitespace", "  \n \n", ErrEmptyLayout},
		{"no pickups", "1111\n6  6\n1111", ErrNoPickups},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.layout)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestChecksum(t *testing.T) {
	a, err := Parse("1.1\n")
	require.NoError(t, err)
	b, err := Parse("1.1")
	require.NoError(t, err)
	c, err := Parse("1..")
	require.NoError(t, err)
	crlf, err := Parse("1.1\r\n.\r\n")
	require.NoError(t, err)
	lf, err := Parse("1.1\n.")
	require.NoError(t, err)

	assert.Equal(t, a.Checksum(), b.Checksum(), "trailing newline must not change the checksum")
	assert.NotEqual(t, a.Checksum(), c.Checksum())
	assert.Equal(t, lf.Checksum(), crlf.Checksum(), "line endings must not change the checksum")
}
