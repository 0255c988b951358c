package indicators

import "iter"

// Aggregate reduces a full trailing window to a single float.
type Aggregate func(window []float64) float64

// Min returns the smallest value of the window.
func Min(window []float64) float64 {
	m := window[0]
	for _, v := range window[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value of the window.
func Max(window []float64) float64 {
	m := window[0]
	for _, v := range window[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Mean returns the arithmetic mean of the window.
func Mean(window []float64) float64 {
	sum := 0.0
	for _, v := range window {
		sum += v
	}
	return sum / float64(len(window))
}

// Window lazily yields, for every position of values, agg applied to the
// trailing w values ending at that position.
//
// A position is undefined when fewer than w values end there or when any value
// inside its window is undefined. A non-positive w, or one longer than the
// series, leaves every position undefined.
func Window(values Series, w int, agg Aggregate) iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		valid := w >= 1 && w <= len(values)
		buf := make([]float64, 0, max(w, 0))
		for i := range values {
			if !valid || i+1 < w {
				if !yield(i, Undefined()) {
					return
				}
				continue
			}
			if !yield(i, aggregate(values[i+1-w:i+1], buf, agg)) {
				return
			}
		}
	}
}

// Rolling collects Window into a Series of the same length as values.
func Rolling(values Series, w int, agg Aggregate) Series {
	out := make(Series, len(values))
	for i, v := range Window(values, w, agg) {
		out[i] = v
	}
	return out
}

func aggregate(window Series, buf []float64, agg Aggregate) Value {
	buf = buf[:0]
	for _, v := range window {
		f, ok := v.Float()
		if !ok {
			return Undefined()
		}
		buf = append(buf, f)
	}
	return Defined(agg(buf))
}
