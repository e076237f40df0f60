package readseries

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadMatrix parses whitespace separated columns of numbers.
// Blank lines and '#' comments are skipped. A non-numeric line before the
// first data row is taken as a header; anywhere else it is an error.
func ReadMatrix(r io.Reader) (*mat.Dense, error) {
	var (
		data    []float64
		rows    int
		cols    int
		lineNum int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		row, col, err := parseRow(strings.Fields(line))
		if err != nil {
			if rows == 0 {
				continue
			}
			return nil, fmt.Errorf("line %d, column %d: %v", lineNum, col+1, err)
		}

		if rows == 0 {
			cols = len(row)
		} else if len(row) != cols {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", lineNum, cols, len(row))
		}
		data = append(data, row...)
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %v", err)
	}

	if rows == 0 {
		return &mat.Dense{}, nil
	}
	return mat.NewDense(rows, cols, data), nil
}

// parseRow converts fields to numbers, reporting the first bad column.
func parseRow(fields []string) ([]float64, int, error) {
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, i, err
		}
		row[i] = v
	}
	return row, 0, nil
}

// Column extracts column j of m, counting negative j from the right.
func Column(m *mat.Dense, j int) ([]float64, error) {
	if m.IsEmpty() {
		return nil, nil
	}
	_, cols := m.Dims()
	if j < 0 {
		j += cols
	}
	if j < 0 || j >= cols {
		return nil, fmt.Errorf("column %d out of range, matrix has %d columns", j, cols)
	}
	return mat.Col(nil, j, m), nil
}
