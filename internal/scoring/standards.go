package scoring

import "fmt"

// Test name constants shared with the standards and normative tables.
const (
	TestPushUp           = "push_up"
	TestSingleLegBalance = "single_leg_balance"
	TestFarmerCarry      = "farmer_carry"
	TestToeTouch         = "toe_touch"
	TestHarvardStep      = "harvard_step"
	TestOverheadSquat    = "overhead_squat"
	TestShoulderMobility = "shoulder_mobility"
)

// Direction encodes whether a larger raw value earns a higher score.
type Direction string

const (
	HigherIsBetter Direction = "higher"
	LowerIsBetter  Direction = "lower"
)

// StandardBands holds the three cutoffs that split a raw measurement into
// the 1-4 score bands. For higher-is-better tests the cutoffs ascend
// (cutoff for score 2, 3, 4); for lower-is-better tests they descend.
type StandardBands struct {
	Cutoffs   [3]float64 `json:"cutoffs"`
	Direction Direction  `json:"direction"`
}

// StandardsSource resolves scoring thresholds for a test and demographic.
// Implementations must fall back to the built-in default table rather than
// failing when no configured row matches; only malformed input (such as a
// negative age) is an error.
type StandardsSource interface {
	GetStandard(testName, gender string, age int, variation string) (*StandardBands, error)
}

// ScoreFromBands maps a raw measurement onto the discrete 1-4 scale.
func ScoreFromBands(value float64, bands *StandardBands) int {
	score := 1
	for _, cutoff := range bands.Cutoffs {
		switch bands.Direction {
		case LowerIsBetter:
			if value <= cutoff {
				score++
			}
		default:
			if value >= cutoff {
				score++
			}
		}
	}
	if score > 4 {
		score = 4
	}
	return score
}

// AgeBand is one contiguous demographic bucket of the standards tables.
type AgeBand struct {
	Min int
	Max int
}

// Bands are contiguous and non-overlapping; every supported age falls in
// exactly one.
var defaultAgeBands = []AgeBand{
	{0, 19},
	{20, 29},
	{30, 39},
	{40, 49},
	{50, 59},
	{60, 120},
}

// ResolveAgeBand returns the bucket containing age, or a validation error
// for ages outside the supported 0-120 range.
func ResolveAgeBand(age int) (AgeBand, error) {
	if age < 0 {
		return AgeBand{}, errNegative("age", age)
	}
	for _, band := range defaultAgeBands {
		if age >= band.Min && age <= band.Max {
			return band, nil
		}
	}
	return AgeBand{}, errOutOfRange("age", age)
}

// CacheKey builds the canonical cache key for a standards lookup. The key
// is per (test, gender, age band, variation), so every age within a band
// shares one entry.
func CacheKey(testName, gender string, age int, variation string) (string, error) {
	band, err := ResolveAgeBand(age)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s:%d-%d:%s", testName, gender, band.Min, band.Max, variation), nil
}
