package monitor

import "math"

// metricHistory is a fixed-size rolling window of observations for one
// metric. Not safe for concurrent use; the monitor's mutex guards it.
type metricHistory struct {
	values []float64
	head   int
	count  int
}

func newMetricHistory(size int) *metricHistory {
	return &metricHistory{values: make([]float64, size)}
}

func (h *metricHistory) add(v float64) {
	h.values[h.head] = v
	h.head = (h.head + 1) % len(h.values)
	if h.count < len(h.values) {
		h.count++
	}
}

func (h *metricHistory) len() int {
	return h.count
}

func (h *metricHistory) mean() float64 {
	if h.count == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < h.count; i++ {
		sum += h.values[i]
	}
	return sum / float64(h.count)
}

// stddev is the population standard deviation around the given mean.
func (h *metricHistory) stddev(mean float64) float64 {
	if h.count == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < h.count; i++ {
		d := h.values[i] - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(h.count))
}
