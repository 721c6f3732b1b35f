package metrics

import (
	"fmt"
	"math"

	"github.com/arloliu/featstore/errs"
	"github.com/arloliu/featstore/executor"
)

// Indices of the balanced accuracy statistics in MetricHolder.Stats.
const (
	StatTruePositive = iota
	StatTargetPositive
	StatTrueNegative
	StatTargetNegative

	BalancedAccuracyStatCount
)

// DefaultBinaryBorder is the approximation border of binary classification.
const DefaultBinaryBorder = 0.0

const targetBorder = 0.5

// predictedClass reports whether document i is predicted as positiveClass.
//
// A single approximation dimension means binary classification on border;
// otherwise the predicted class is the argmax over dimensions.
func predictedClass(approx [][]float64, i, positiveClass int, border float64) bool {
	if len(approx) == 1 {
		return binaryClass(approx[0][i] > border) == positiveClass
	}

	best := 0
	for d := 1; d < len(approx); d++ {
		if approx[d][i] > approx[best][i] {
			best = d
		}
	}

	return best == positiveClass
}

func binaryClass(positive bool) int {
	if positive {
		return 1
	}

	return 0
}

func targetClass(target float32, dims, positiveClass int) bool {
	if dims == 1 {
		return binaryClass(target > targetBorder) == positiveClass
	}

	return int(target) == positiveClass
}

func checkRange(approx [][]float64, target, weight []float32, begin, end int) error {
	if len(approx) == 0 {
		return fmt.Errorf("%w: no approximation dimensions", errs.ErrInvalidRange)
	}
	if begin < 0 || end < begin || end > len(target) {
		return fmt.Errorf("%w: [%d, %d) with %d targets", errs.ErrInvalidRange, begin, end, len(target))
	}
	for d, dim := range approx {
		if len(dim) < end {
			return fmt.Errorf("%w: approx dimension %d has %d documents, need %d", errs.ErrInvalidRange, d, len(dim), end)
		}
	}
	if len(weight) != 0 && len(weight) < end {
		return fmt.Errorf("%w: %d weights, need %d", errs.ErrInvalidRange, len(weight), end)
	}

	return nil
}

// CalcBalancedAccuracyStats folds documents [begin, end) into balanced
// accuracy statistics for positiveClass. An empty weight slice weighs every
// document 1.
func CalcBalancedAccuracyStats(
	approx [][]float64,
	target []float32,
	weight []float32,
	begin, end int,
	positiveClass int,
	border float64,
) (MetricHolder, error) {
	if err := checkRange(approx, target, weight, begin, end); err != nil {
		return MetricHolder{}, err
	}

	return balancedAccuracyStats(approx, target, weight, begin, end, positiveClass, border), nil
}

func balancedAccuracyStats(
	approx [][]float64,
	target []float32,
	weight []float32,
	begin, end int,
	positiveClass int,
	border float64,
) MetricHolder {
	h := NewMetricHolder(BalancedAccuracyStatCount)
	for i := begin; i < end; i++ {
		w := 1.0
		if len(weight) != 0 {
			w = float64(weight[i])
		}

		predicted := predictedClass(approx, i, positiveClass, border)
		actual := targetClass(target[i], len(approx), positiveClass)
		if actual {
			h.Stats[StatTargetPositive] += w
			if predicted {
				h.Stats[StatTruePositive] += w
			}
		} else {
			h.Stats[StatTargetNegative] += w
			if !predicted {
				h.Stats[StatTrueNegative] += w
			}
		}
	}

	return h
}

// ParallelCalcBalancedAccuracyStats is CalcBalancedAccuracyStats spread
// over exec. Per-block holders are summed in block order, so the result
// does not depend on the number of workers.
func ParallelCalcBalancedAccuracyStats(
	exec executor.Executor,
	approx [][]float64,
	target []float32,
	weight []float32,
	begin, end int,
	positiveClass int,
	border float64,
) (MetricHolder, error) {
	if err := checkRange(approx, target, weight, begin, end); err != nil {
		return MetricHolder{}, err
	}

	count := end - begin
	blockSize := exec.BlockSize(count)
	partial := make([]MetricHolder, executor.BlockCount(count, blockSize))
	exec.ExecRange(count, blockSize, func(b, e int) {
		partial[b/blockSize] = balancedAccuracyStats(approx, target, weight, begin+b, begin+e, positiveClass, border)
	})

	total := NewMetricHolder(BalancedAccuracyStatCount)
	for _, h := range partial {
		if err := total.Add(h); err != nil {
			return MetricHolder{}, err
		}
	}

	return total, nil
}

// CalcBalancedAccuracy returns the mean of sensitivity and specificity.
//
// A ratio whose denominator is not positive counts as 0, except that a holder where
// every positive and every negative was classified correctly, including an
// empty one, scores 1. A holder without the balanced accuracy statistics,
// such as the zero MetricHolder, yields NaN.
func CalcBalancedAccuracy(h MetricHolder) float64 {
	if len(h.Stats) < BalancedAccuracyStatCount {
		return math.NaN()
	}

	tp := h.Stats[StatTruePositive]
	p := h.Stats[StatTargetPositive]
	tn := h.Stats[StatTrueNegative]
	n := h.Stats[StatTargetNegative]

	if tp == p && tn == n {
		return 1
	}

	return (ratio(tp, p) + ratio(tn, n)) / 2
}

func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}

	return num / den
}
