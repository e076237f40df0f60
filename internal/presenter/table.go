package presenter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
)

const histogramWidth = 50

// column is one named table column.
type column struct {
	name   string
	values []float64
}

// writeTable prints columns side by side, at most maxRows rows.
// Columns are expected to have equal length.
func writeTable(w io.Writer, maxRows int, cols ...column) error {
	if len(cols) == 0 {
		return nil
	}
	rows := len(cols[0].values)
	shown := rows
	if maxRows > 0 && shown > maxRows {
		shown = maxRows
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{"i"}
	for _, c := range cols {
		header = append(header, c.name)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for i := 0; i < shown; i++ {
		record := []string{strconv.Itoa(i)}
		for _, c := range cols {
			record = append(record, formatValue(c.values[i]))
		}
		fmt.Fprintln(tw, strings.Join(record, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if shown < rows {
		_, err := fmt.Fprintf(w, "... %d more rows\n", rows-shown)
		return err
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeHistogram draws one bar per interval, scaled to the largest frequency.
func writeHistogram(w io.Writer, intervals []float64, frequencies []int) error {
	if len(frequencies) == 0 {
		return nil
	}
	counts := make([]float64, len(frequencies))
	for i, f := range frequencies {
		counts[i] = float64(f)
	}
	maxCount := floats.Max(counts)

	for i, count := range frequencies {
		bar := ""
		if maxCount > 0 {
			bar = strings.Repeat("█", int(float64(count)/maxCount*histogramWidth))
		}
		if _, err := fmt.Fprintf(w, "%10.4f: %s %d\n", intervals[i], bar, count); err != nil {
			return err
		}
	}
	return nil
}
