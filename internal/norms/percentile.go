package norms

import "math"

// Stats is one population statistic bucket: mean and standard deviation
// of a test's raw values for a demographic.
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Sample string  `json:"sample,omitempty"`
}

// AgeBandStats is a Stats row with its age bucket, used for the
// performance-age search.
type AgeBandStats struct {
	AgeMin int     `json:"age_min"`
	AgeMax int     `json:"age_max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Source provides normative population data. Both methods return nil (no
// error) when no data exists for the test/demographic; missing reference
// data is never fatal.
type Source interface {
	GetStats(testName, gender string, age int) (*Stats, error)
	GetAgeSeries(testName, gender string) ([]AgeBandStats, error)
}

// Result is the percentile rank and estimated performance age for one
// raw value. Nil fields mean no normative data was available.
type Result struct {
	Percentile     *float64 `json:"percentile,omitempty"`
	PerformanceAge *int     `json:"performance_age,omitempty"`
}

// Percentile ranks a raw value against a normal distribution with the
// bucket's mean and standard deviation, clamped to [0,100]. For
// lower-is-better tests the rank is flipped so that a better value always
// ranks higher.
func Percentile(value float64, stats *Stats, higherIsBetter bool) float64 {
	if stats.StdDev <= 0 {
		if value == stats.Mean {
			return 50
		}
		if (value > stats.Mean) == higherIsBetter {
			return 100
		}
		return 0
	}
	z := (value - stats.Mean) / stats.StdDev
	p := 0.5 * (1 + math.Erf(z/math.Sqrt2))
	if !higherIsBetter {
		p = 1 - p
	}
	return math.Min(100, math.Max(0, p*100))
}

// PerformanceAge finds the age bucket whose population mean is nearest
// the raw value (nearest match, no interpolation) and returns the bucket
// midpoint. An empty series yields nil.
func PerformanceAge(value float64, series []AgeBandStats) *int {
	if len(series) == 0 {
		return nil
	}
	best := series[0]
	bestDist := math.Abs(value - best.Mean)
	for _, band := range series[1:] {
		dist := math.Abs(value - band.Mean)
		if dist < bestDist {
			best = band
			bestDist = dist
		}
	}
	mid := (best.AgeMin + best.AgeMax) / 2
	return &mid
}

// Evaluate computes both the percentile rank and the performance age for
// one raw value. Missing normative data yields nil fields, not an error.
func Evaluate(src Source, testName, gender string, age int, value float64, higherIsBetter bool) (*Result, error) {
	result := &Result{}

	stats, err := src.GetStats(testName, gender, age)
	if err != nil {
		return nil, err
	}
	if stats != nil {
		p := math.Round(Percentile(value, stats, higherIsBetter)*10) / 10
		result.Percentile = &p
	}

	series, err := src.GetAgeSeries(testName, gender)
	if err != nil {
		return nil, err
	}
	result.PerformanceAge = PerformanceAge(value, series)

	return result, nil
}
