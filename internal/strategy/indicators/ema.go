package indicators

// EMA computes the exponential moving average of values with smoothing factor
// alpha = 2/(span+1).
//
// The recursion is seeded with the first raw input rather than a simple
// average of the first span values, so ema[0] == values[0] and every position
// is defined. Early positions therefore differ from SMA-seeded references.
func EMA(values []float64, span int) ([]float64, error) {
	if err := requirePositive("span", span); err != nil {
		return nil, err
	}

	out := make([]float64, len(values))
	if len(values) == 0 {
		return out, nil
	}

	alpha := 2.0 / float64(span+1)
	prev := values[0]
	out[0] = prev
	for i := 1; i < len(values); i++ {
		prev = alpha*values[i] + (1-alpha)*prev
		out[i] = prev
	}
	return out, nil
}
