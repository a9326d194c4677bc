package scoring

// Push-up variation keys used in standards lookups.
const (
	PushUpVariationStandard = "standard"
	PushUpVariationModified = "modified"
	PushUpVariationWall     = "wall"
)

// ScoreSource tags how a test score was produced.
type ScoreSource string

const (
	SourceCalculated ScoreSource = "calculated"
	SourceOverridden ScoreSource = "overridden"
)

// TestScore is one per-test result on the internal 1-4 scale, tagged with
// its provenance. A nil *TestScore means the test was not performed;
// aggregation excludes nil scores instead of treating them as zero.
type TestScore struct {
	Value  float64
	Source ScoreSource
}

func Calculated(value float64) *TestScore {
	return &TestScore{Value: value, Source: SourceCalculated}
}

func Overridden(value float64) *TestScore {
	return &TestScore{Value: value, Source: SourceOverridden}
}

// Manual override bounds for the FMS-style tests.
const (
	OverrideMin = 0
	OverrideMax = 5
)

// NormalizeOverride maps a trainer-entered 0-5 override onto the internal
// 1-4 scale: 0 -> 1.0, 1 -> 1.6, 2 -> 2.2, 3 -> 2.8, 4 -> 3.4, 5 -> 4.0.
// The linear step of 0.6 keeps overridden scores comparable with
// auto-calculated ones during category aggregation.
func NormalizeOverride(override int) (float64, error) {
	if override < OverrideMin || override > OverrideMax {
		return 0, errOutOfRange("override", override)
	}
	return 1.0 + 0.6*float64(override), nil
}

// Movement quality tiers for the overhead squat, 0-3.
var squatQualityTiers = map[string]int{
	"pain":        0,
	"unable":      1,
	"compensated": 2,
	"perfect":     3,
}

// Hand-gap tiers for shoulder mobility, 0-3.
var shoulderGapTiers = map[string]int{
	"pain":           0,
	"over_two_fists": 1,
	"fist_and_half":  2,
	"within_fist":    3,
}
