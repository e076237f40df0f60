package readseries

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// Numbers is a sequence that survives JSON: NaN and ±Inf are written as null
// and null is read back as NaN.
type Numbers []float64

func (n Numbers) MarshalJSON() ([]byte, error) {
	vals := make([]*float64, len(n))
	for i := range n {
		if math.IsNaN(n[i]) || math.IsInf(n[i], 0) {
			continue
		}
		v := n[i]
		vals[i] = &v
	}
	return json.Marshal(vals)
}

func (n *Numbers) UnmarshalJSON(data []byte) error {
	var vals []*float64
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	res := make(Numbers, len(vals))
	for i, v := range vals {
		if v == nil {
			res[i] = math.NaN()
			continue
		}
		res[i] = *v
	}
	*n = res
	return nil
}

// Document is the persisted form of a generated sequence.
type Document struct {
	Numbers Numbers `json:"numbers"`
}

// ReadSeries loads a sequence from a {"numbers": [...]} JSON document or,
// for any other extension, from the last column of a whitespace separated
// text file.
func ReadSeries(filename string) ([]float64, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}

	if strings.EqualFold(filepath.Ext(filename), ".json") {
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %v", filename, err)
		}
		return doc.Numbers, nil
	}

	m, err := ReadMatrix(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return Column(m, -1)
}
