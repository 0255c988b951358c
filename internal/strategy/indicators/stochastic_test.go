package indicators

import (
	"testing"

	"github.com/ahmedfahmy1117/egx/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// risingBars builds n bars whose ranges climb by one each bar.
func risingBars(n int) []*domain.Bar {
	bars := make([]*domain.Bar, n)
	for i := range bars {
		bars[i] = &domain.Bar{
			Open:  7.5 + float64(i),
			High:  10 + float64(i),
			Low:   5 + float64(i),
			Close: 7.5 + float64(i),
		}
	}
	return bars
}

// fallingBars builds n bars whose ranges drop by one each bar.
func fallingBars(n int) []*domain.Bar {
	bars := make([]*domain.Bar, n)
	for i := range bars {
		bars[i] = &domain.Bar{
			Open:  25 - float64(i),
			High:  30 - float64(i),
			Low:   20 - float64(i),
			Close: 25 - float64(i),
		}
	}
	return bars
}

func flatBar(price float64) *domain.Bar {
	return &domain.Bar{Open: price, High: price, Low: price, Close: price}
}

func TestDefaultStochasticConfig(t *testing.T) {
	assert.Equal(t, StochasticConfig{KPeriod: 14, DPeriod: 3}, DefaultStochasticConfig())
}

func TestStochastic_CloseAtHighIs100(t *testing.T) {
	bars := risingBars(14)
	bars[13].Close = bars[13].High

	res, err := Stochastic(bars, DefaultStochasticConfig())
	require.NoError(t, err)

	k, ok := res.K[13].Float()
	require.True(t, ok)
	assert.Equal(t, 100.0, k)
}

func TestStochastic_CloseAtLowIs0(t *testing.T) {
	bars := fallingBars(14)
	bars[13].Close = bars[13].Low

	res, err := Stochastic(bars, DefaultStochasticConfig())
	require.NoError(t, err)

	k, ok := res.K[13].Float()
	require.True(t, ok)
	assert.Equal(t, 0.0, k)
}

func TestStochastic_FlatWindowIsUndefined(t *testing.T) {
	bars := make([]*domain.Bar, 14)
	for i := range bars {
		bars[i] = flatBar(42)
	}

	res, err := Stochastic(bars, DefaultStochasticConfig())
	require.NoError(t, err)

	assert.False(t, res.K[13].IsDefined(), "zero range must be undefined, got %v", res.K[13])
	assert.False(t, res.D[13].IsDefined())
}

func TestStochastic_WarmUp(t *testing.T) {
	cfg := StochasticConfig{KPeriod: 5, DPeriod: 3}
	bars := risingBars(12)

	res, err := Stochastic(bars, cfg)
	require.NoError(t, err)
	require.Len(t, res.K, len(bars))
	require.Len(t, res.D, len(bars))

	for i := range bars {
		assert.Equal(t, i >= cfg.KPeriod-1, res.K[i].IsDefined(), "%%K at %d", i)
		assert.Equal(t, i >= cfg.KPeriod+cfg.DPeriod-2, res.D[i].IsDefined(), "%%D at %d", i)
	}
}

func TestStochastic_KnownValues(t *testing.T) {
	bars := []*domain.Bar{
		{High: 10, Low: 8, Close: 9},
		{High: 11, Low: 9, Close: 10},
		{High: 12, Low: 9, Close: 11},
		{High: 12, Low: 10, Close: 10},
		{High: 13, Low: 11, Close: 13},
	}
	cfg := StochasticConfig{KPeriod: 3, DPeriod: 2}

	res, err := Stochastic(bars, cfg)
	require.NoError(t, err)

	// i=2: low 8, high 12 -> 100*(11-8)/4 = 75
	// i=3: low 9, high 12 -> 100*(10-9)/3
	// i=4: low 9, high 13 -> 100*(13-9)/4 = 100
	wantK := []float64{75, 100.0 / 3, 100}
	for j, want := range wantK {
		got, ok := res.K[j+2].Float()
		require.True(t, ok)
		assert.InDelta(t, want, got, 1e-9)
	}

	d3, ok := res.D[3].Float()
	require.True(t, ok)
	assert.InDelta(t, (75+100.0/3)/2, d3, 1e-9)
	d4, ok := res.D[4].Float()
	require.True(t, ok)
	assert.InDelta(t, (100.0/3+100)/2, d4, 1e-9)
}

func TestStochastic_DegenerateRangePropagatesToD(t *testing.T) {
	cfg := StochasticConfig{KPeriod: 2, DPeriod: 2}
	bars := []*domain.Bar{
		{High: 10, Low: 8, Close: 9},
		{High: 11, Low: 9, Close: 10},
		flatBar(50),
		flatBar(50),
		{High: 12, Low: 10, Close: 11},
		{High: 13, Low: 11, Close: 12},
	}

	res, err := Stochastic(bars, cfg)
	require.NoError(t, err)

	// Window [2,3] is flat.
	assert.False(t, res.K[3].IsDefined())
	assert.True(t, res.K[2].IsDefined())
	assert.True(t, res.K[4].IsDefined())

	// %D needs both %K values of its window.
	assert.False(t, res.D[3].IsDefined())
	assert.False(t, res.D[4].IsDefined())
	assert.True(t, res.D[5].IsDefined())
}

func TestStochastic_DefinedValuesAreBounded(t *testing.T) {
	bars := append(risingBars(20), fallingBars(20)...)

	res, err := Stochastic(bars, DefaultStochasticConfig())
	require.NoError(t, err)

	for i, v := range res.K {
		if f, ok := v.Float(); ok {
			assert.GreaterOrEqual(t, f, 0.0, "%%K at %d", i)
			assert.LessOrEqual(t, f, 100.0, "%%K at %d", i)
		}
	}
}

func TestStochastic_InvalidInput(t *testing.T) {
	_, err := Stochastic(risingBars(5), StochasticConfig{KPeriod: 0, DPeriod: 3})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Stochastic(risingBars(5), StochasticConfig{KPeriod: 3, DPeriod: -1})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	bars := risingBars(5)
	bars[2] = nil
	_, err = Stochastic(bars, StochasticConfig{KPeriod: 3, DPeriod: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStochastic_ShortSeriesIsAllUndefined(t *testing.T) {
	res, err := Stochastic(risingBars(10), DefaultStochasticConfig())
	require.NoError(t, err)

	for i := range res.K {
		assert.False(t, res.K[i].IsDefined())
		assert.False(t, res.D[i].IsDefined())
	}
}
