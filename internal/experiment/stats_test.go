package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Zero(t, mean(nil))
	assert.InDelta(t, 2.0, mean([]float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, -1.5, mean([]float64{-1, -2}), 1e-9)
}

func TestStdDev(t *testing.T) {
	assert.Zero(t, stdDev(nil))
	assert.Zero(t, stdDev([]float64{5}))
	assert.Zero(t, stdDev([]float64{3, 3, 3}))
	// Sample standard deviation of {2,4,4,4,5,5,7,9} with n-1.
	assert.InDelta(t, 2.138, stdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 0.001)
}

func TestMedian(t *testing.T) {
	assert.Zero(t, median(nil))
	assert.InDelta(t, 2.0, median([]float64{3, 1, 2}), 1e-9)
	assert.InDelta(t, 2.5, median([]float64{4, 1, 2, 3}), 1e-9)

	// Input must not be reordered.
	values := []float64{3, 1, 2}
	median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMinMax(t *testing.T) {
	lo, hi := minMax(nil)
	assert.Zero(t, lo)
	assert.Zero(t, hi)

	lo, hi = minMax([]float64{4, -1, 7, 0})
	assert.InDelta(t, -1.0, lo, 1e-9)
	assert.InDelta(t, 7.0, hi, 1e-9)
}
