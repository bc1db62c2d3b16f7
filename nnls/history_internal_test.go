package nnls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryEvictsOldest(t *testing.T) {
	h := newHistory(3)
	for i := 0; i < 5; i++ {
		h.push([]float64{float64(i)}, []float64{float64(-i)})
	}

	assert.Equal(t, 3, h.len())
	assert.Equal(t, 2.0, h.at(0).s[0])
	assert.Equal(t, 3.0, h.at(1).s[0])
	assert.Equal(t, 4.0, h.at(2).s[0])
	assert.Equal(t, -4.0, h.at(2).y[0])

	h.reset()
	assert.Equal(t, 0, h.len())
	h.push([]float64{9}, []float64{9})
	assert.Equal(t, 9.0, h.at(0).s[0])
}

func TestSafeRatio(t *testing.T) {
	assert.Equal(t, 1.0, safeRatio(0, 0))
	assert.Equal(t, 1.0, safeRatio(1, 0))
	assert.Equal(t, 0.5, safeRatio(1, 2))
}
