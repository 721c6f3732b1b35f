package metrics

import "fmt"

// MetricHolder carries the additive statistics of a metric.
type MetricHolder struct {
	Stats []float64
}

// NewMetricHolder returns a holder with statCount zeroed statistics.
func NewMetricHolder(statCount int) MetricHolder {
	return MetricHolder{Stats: make([]float64, statCount)}
}

// Add accumulates other into h. Both holders must carry the same number of statistics.
func (h *MetricHolder) Add(other MetricHolder) error {
	if len(h.Stats) != len(other.Stats) {
		return fmt.Errorf("metric holder: cannot add %d stats to %d", len(other.Stats), len(h.Stats))
	}
	for i, v := range other.Stats {
		h.Stats[i] += v
	}

	return nil
}
