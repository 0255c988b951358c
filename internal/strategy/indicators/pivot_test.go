package indicators

import (
	"testing"

	"github.com/ahmedfahmy1117/egx/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPivotPoints(t *testing.T) {
	tests := []struct {
		name string
		bar  *domain.Bar
		want Pivots
	}{
		{
			name: "classic levels",
			bar:  &domain.Bar{High: 110, Low: 90, Close: 100},
			want: Pivots{P: 100, R1: 110, S1: 90, R2: 120, S2: 80},
		},
		{
			name: "flat bar collapses every level",
			bar:  &domain.Bar{High: 50, Low: 50, Close: 50},
			want: Pivots{P: 50, R1: 50, S1: 50, R2: 50, S2: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PivotPoints(tt.bar)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPivotPoints_NilBar(t *testing.T) {
	_, err := PivotPoints(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestDailyPivots_UsesLastBarOnly(t *testing.T) {
	bars := []*domain.Bar{
		{High: 1000, Low: 1, Close: 500},
		{High: 2, Low: 1, Close: 1.5},
		{High: 110, Low: 90, Close: 100},
	}

	got, err := DailyPivots(bars)
	require.NoError(t, err)
	assert.Equal(t, Pivots{P: 100, R1: 110, S1: 90, R2: 120, S2: 80}, got)

	_, err = DailyPivots(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
