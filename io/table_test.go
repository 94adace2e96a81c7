package io

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXYTableRoundTrip(t *testing.T) {
	dir, err := os.MkdirTemp("", "io_table_test")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	file := path.Join(dir, "knots.txt")
	xs := []float64{-1, 2, 6, 8, 18, 30}
	ys := []float64{10, -1, -5, 7, 9, 20}

	assert.NoError(t, WriteXYTable(file, xs, ys))

	readXs, readYs, err := ReadXYTable(file)
	assert.NoError(t, err)
	assert.Equal(t, xs, readXs)
	assert.Equal(t, ys, readYs)

	col, err := ReadXTable(file)
	assert.NoError(t, err)
	assert.Equal(t, xs, col)
}

func TestWriteXYTableLengthMismatch(t *testing.T) {
	err := WriteXYTable("unused.txt", []float64{1, 2}, []float64{1})
	assert.Error(t, err)
}
