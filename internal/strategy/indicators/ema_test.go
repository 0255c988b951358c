package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEMA(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		span     int
		expected []float64
	}{
		{
			name:   "span 3 halves toward each new value",
			values: []float64{1, 2, 3},
			span:   3, // alpha = 0.5
			expected: []float64{
				1,
				1.5,  // 0.5*2 + 0.5*1
				2.25, // 0.5*3 + 0.5*1.5
			},
		},
		{
			name:     "span 1 follows the input",
			values:   []float64{10, 12, 9},
			span:     1,
			expected: []float64{10, 12, 9},
		},
		{
			name:     "single value",
			values:   []float64{7},
			span:     20,
			expected: []float64{7},
		},
		{
			name:     "empty input",
			values:   []float64{},
			span:     5,
			expected: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EMA(tt.values, tt.span)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.expected, got, 1e-12)
		})
	}
}

func TestEMA_ConstantSeriesIsFixedPoint(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = 13.37
	}

	for _, span := range []int{1, 2, 9, 20, 50} {
		got, err := EMA(values, span)
		require.NoError(t, err)
		for i, v := range got {
			assert.InDelta(t, 13.37, v, 1e-9, "span %d position %d", span, i)
		}
	}
}

func TestEMA_SeedIsFirstValue(t *testing.T) {
	values := []float64{101.25, 99, 104, 98.5}

	for _, span := range []int{1, 3, 12, 26, 200} {
		got, err := EMA(values, span)
		require.NoError(t, err)
		assert.Equal(t, values[0], got[0], "span %d", span)
	}
}

func TestEMA_RejectsNonPositiveSpan(t *testing.T) {
	for _, span := range []int{0, -1, -26} {
		got, err := EMA([]float64{1, 2, 3}, span)
		assert.ErrorIs(t, err, ErrInvalidParameter, "span %d", span)
		assert.Nil(t, got)
	}
}

func TestEMA_DoesNotMutateInput(t *testing.T) {
	values := []float64{5, 6, 7, 8}
	_, err := EMA(values, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7, 8}, values)
}
