package analytics

import "math"

// stats aggregates one bucket's numeric sequence. StdDev is nil when fewer
// than two values exist; a sample deviation is undefined there and nil keeps
// that state distinct from a true zero variance.
type stats struct {
	Mean   float64
	Count  int
	Min    int
	Max    int
	StdDev *float64
}

// aggregate computes mean, count, min, max, and sample standard deviation
// over a bucket. Values are kept at full precision; rounding happens only at
// the output boundary.
func aggregate(values []int) stats {
	if len(values) == 0 {
		return stats{}
	}

	s := stats{Count: len(values), Min: values[0], Max: values[0]}
	sum := 0
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = float64(sum) / float64(len(values))

	if len(values) >= 2 {
		var ss float64
		for _, v := range values {
			d := float64(v) - s.Mean
			ss += d * d
		}
		sd := math.Sqrt(ss / float64(len(values)-1))
		s.StdDev = &sd
	}

	return s
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func meanFloat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev returns the sample standard deviation, or false with fewer
// than two values.
func sampleStdDev(values []int) (float64, bool) {
	s := aggregate(values)
	if s.StdDev == nil {
		return 0, false
	}
	return *s.StdDev, true
}

// round2 rounds to two decimal places, the fixed output precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to one decimal place, used only inside formatted messages.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
