package data

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// LoadCSV loads a classification dataset from a CSV file.
//
// Expected format (Kaggle MNIST style), one sample per row with a header:
//
//	label,f0,f1,...,fN
//	5,0,0,12,...,0
//
// Every feature value is divided by scale; pass 1 for untouched values or
// e.g. 255 to normalize byte-range pixels into [0, 1].
func LoadCSV(path string, scale float64) ([][]float64, []int, error) {
	if scale == 0 {
		scale = 1
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "data: open CSV")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "data: read CSV")
	}
	if len(records) < 2 {
		return nil, nil, errors.New("data: CSV is empty or missing header")
	}
	records = records[1:] // Skip header

	features := make([][]float64, len(records))
	labels := make([]int, len(records))
	for i, record := range records {
		if len(record) < 2 {
			return nil, nil, errors.Errorf("data: row %d has %d columns, want at least 2", i+1, len(record))
		}

		label, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "data: invalid label at row %d", i+1)
		}
		if label < 0 {
			return nil, nil, errors.Errorf("data: negative label %d at row %d", label, i+1)
		}
		labels[i] = label

		row := make([]float64, len(record)-1)
		for j, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "data: invalid feature at row %d, column %d", i+1, j+1)
			}
			row[j] = v / scale
		}
		features[i] = row
	}

	return features, labels, nil
}
