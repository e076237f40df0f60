package presenter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"
	"gonum.org/v1/gonum/mat"

	"prng-go/pkg/readseries"
)

// SaveNumbers writes {"numbers": [...]} to filename, creating its folder.
func SaveNumbers(numbers []float64, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return errors.Wrap(err, "failed to create output folder", logan.F{"file": filename})
	}

	data, err := json.Marshal(readseries.Document{Numbers: numbers})
	if err != nil {
		return errors.Wrap(err, "failed to encode numbers")
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write numbers", logan.F{"file": filename})
	}
	return nil
}

// SaveDenseToCSV writes m with an optional header row.
func SaveDenseToCSV(m *mat.Dense, header []string, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return errors.Wrap(err, "failed to create output folder", logan.F{"file": filename})
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create csv file", logan.F{"file": filename})
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if len(header) > 0 {
		if err := writer.Write(header); err != nil {
			return errors.Wrap(err, "failed to write csv header")
		}
	}

	if !m.IsEmpty() {
		rows, cols := m.Dims()
		for i := 0; i < rows; i++ {
			record := make([]string, cols)
			for j := 0; j < cols; j++ {
				record[j] = strconv.FormatFloat(m.At(i, j), 'f', -1, 64)
			}
			if err := writer.Write(record); err != nil {
				return errors.Wrap(err, "failed to write csv row", logan.F{"row": i})
			}
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush csv")
}
