package esig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/esig/pkg/esig"
)

func TestMillimetersToPoints(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 72.0, esig.MillimetersToPoints(25.4), 1e-9)
	assert.InDelta(t, 595.28, esig.MillimetersToPoints(210), 0.01)
	assert.InDelta(t, 0.0, esig.MillimetersToPoints(0), 1e-9)
}

func TestPointsToMillimeters(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 25.4, esig.PointsToMillimeters(72), 1e-9)

	for _, mm := range []float64{1, 12.5, 297} {
		assert.InDelta(t, mm, esig.PointsToMillimeters(esig.MillimetersToPoints(mm)), 1e-9)
	}
}
