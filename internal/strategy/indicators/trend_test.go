package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A steadily rising close must put the fast EMA above the slow one and leave
// the MACD line positive and still rising on the last bar.
func TestSteadyUptrend(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	ema20, err := EMA(closes, 20)
	require.NoError(t, err)
	ema50, err := EMA(closes, 50)
	require.NoError(t, err)
	assert.Greater(t, ema20[59], ema50[59])

	res, err := MACD(closes, DefaultMACDConfig())
	require.NoError(t, err)
	assert.Greater(t, res.Line[59], 0.0)
	assert.Greater(t, res.Line[59], res.Line[58])
}
