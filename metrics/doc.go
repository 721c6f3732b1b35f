// Package metrics computes evaluation metrics over model approximations.
//
// A metric is split into two pure functions: a stats pass that folds a
// document range into a MetricHolder of additive statistics, and a final
// function that turns the (possibly merged) holder into the metric value.
// Holders from disjoint ranges are combined with Add, which is how
// ParallelCalcBalancedAccuracyStats spreads the stats pass over an executor.
package metrics
