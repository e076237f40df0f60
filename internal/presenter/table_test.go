package presenter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTableCapsRows(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, 2,
		column{"Ri", []float64{0.1, 0.2, 0.3}},
		column{"Ni", []float64{1, 2, 3}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Ri")
	assert.Contains(t, lines[1], "0.1")
	assert.Equal(t, "... 1 more rows", lines[3])
}

func TestWriteHistogram(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeHistogram(&buf, []float64{-1, 0, 1}, []int{1, 2, 0}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, histogramWidth, strings.Count(lines[1], "█"))
	assert.Equal(t, histogramWidth/2, strings.Count(lines[0], "█"))
	assert.Zero(t, strings.Count(lines[2], "█"))
}
