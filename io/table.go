package io

import (
	"fmt"
	"os"

	"github.com/phil-mansfield/table"
)

// ReadXYTable reads the first two columns of a whitespace-separated text
// table.
func ReadXYTable(file string) (xs, ys []float64, err error) {
	cols, err := table.ReadTable(file, []int{0, 1}, nil)
	if err != nil {
		return nil, nil, err
	}
	return cols[0], cols[1], nil
}

// ReadXTable reads the first column of a whitespace-separated text table.
func ReadXTable(file string) ([]float64, error) {
	cols, err := table.ReadTable(file, []int{0}, nil)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// WriteXYTable writes xs and ys as a two-column text table.
func WriteXYTable(file string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf(
			"Table columns have lengths %d and %d.", len(xs), len(ys),
		)
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	for i := range xs {
		_, err = fmt.Fprintf(f, "%g %g\n", xs[i], ys[i])
		if err != nil {
			return err
		}
	}
	return nil
}
