package stats

import (
	"math"

	moremath "github.com/aclements/go-moremath/stats"
)

// Mean returns the arithmetic mean of xs, or 0 when xs is empty.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sample := moremath.Sample{Xs: xs}
	return sample.Mean()
}

// RoundMean returns the mean of xs rounded to the nearest integer.
func RoundMean(xs []float64) int {
	return int(math.Round(Mean(xs)))
}

// Round1 rounds x to one decimal place, halves rounding away from zero.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
