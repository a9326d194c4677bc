package scoring

import "math"

// Physiological bounds for a post-exercise heart rate reading (beats per
// 30 seconds would be half of these; readings here are bpm).
const (
	heartRateMin = 30
	heartRateMax = 250
)

// Step test protocol length in seconds (5 minute Harvard protocol).
const stepTestDurationSec = 300

// ScorePushUp scores a repetition count against the variation-specific
// standards row.
func ScorePushUp(src StandardsSource, count int, pushUpType, gender string, age int) (*TestScore, error) {
	if count < 0 {
		return nil, errNegative("push_up_count", count)
	}
	switch pushUpType {
	case PushUpVariationStandard, PushUpVariationModified, PushUpVariationWall:
	default:
		return nil, errUnknownValue("push_up_type", pushUpType)
	}
	bands, err := src.GetStandard(TestPushUp, gender, age, pushUpType)
	if err != nil {
		return nil, err
	}
	return Calculated(float64(ScoreFromBands(float64(count), bands))), nil
}

// ScoreSingleLegBalance scores the weaker side's hold time. The weaker
// side is the bottleneck; asymmetry between sides is the risk
// calculator's concern, not this scorer's.
func ScoreSingleLegBalance(src StandardsSource, leftSec, rightSec float64, gender string, age int) (*TestScore, error) {
	if leftSec < 0 {
		return nil, errNegative("balance_left_sec", leftSec)
	}
	if rightSec < 0 {
		return nil, errNegative("balance_right_sec", rightSec)
	}
	bands, err := src.GetStandard(TestSingleLegBalance, gender, age, "")
	if err != nil {
		return nil, err
	}
	weaker := math.Min(leftSec, rightSec)
	return Calculated(float64(ScoreFromBands(weaker, bands))), nil
}

// ScoreFarmerCarry scores the total carry hold time. The direction comes
// from the standards row; the default table encodes the endurance framing
// (longer hold, higher score).
func ScoreFarmerCarry(src StandardsSource, totalSec float64, gender string, age int) (*TestScore, error) {
	if totalSec < 0 {
		return nil, errNegative("carry_total_sec", totalSec)
	}
	bands, err := src.GetStandard(TestFarmerCarry, gender, age, "")
	if err != nil {
		return nil, err
	}
	return Calculated(float64(ScoreFromBands(totalSec, bands))), nil
}

// ScoreToeTouch scores the signed reach distance in cm. Negative means
// short of the toes, so no sign validation here.
func ScoreToeTouch(src StandardsSource, distanceCm float64, gender string, age int) (*TestScore, error) {
	if distanceCm < -100 || distanceCm > 100 {
		return nil, errOutOfRange("toe_touch_cm", distanceCm)
	}
	bands, err := src.GetStandard(TestToeTouch, gender, age, "")
	if err != nil {
		return nil, err
	}
	return Calculated(float64(ScoreFromBands(distanceCm, bands))), nil
}

// FitnessIndex computes the Harvard step test physical efficiency index
// from the three post-exercise heart rate readings:
//
//	index = duration * 100 / (2 * (hr1 + hr2 + hr3))
//
// Lower recovery heart rates yield a higher index.
func FitnessIndex(hr1, hr2, hr3 int) (float64, error) {
	for _, hr := range []struct {
		field string
		value int
	}{
		{"step_hr1", hr1},
		{"step_hr2", hr2},
		{"step_hr3", hr3},
	} {
		if hr.value < heartRateMin || hr.value > heartRateMax {
			return 0, errOutOfRange(hr.field, hr.value)
		}
	}
	sum := float64(hr1 + hr2 + hr3)
	return stepTestDurationSec * 100 / (2 * sum), nil
}

// ScoreHarvardStep scores the step test fitness index against the
// standards row.
func ScoreHarvardStep(src StandardsSource, hr1, hr2, hr3 int, gender string, age int) (*TestScore, error) {
	index, err := FitnessIndex(hr1, hr2, hr3)
	if err != nil {
		return nil, err
	}
	bands, err := src.GetStandard(TestHarvardStep, gender, age, "")
	if err != nil {
		return nil, err
	}
	return Calculated(float64(ScoreFromBands(index, bands))), nil
}

// ScoreOverheadSquat derives a score from the movement quality category,
// demoted one tier when the arms drop during descent. A manual override
// takes precedence over the quality inputs and is normalized onto the
// internal scale; the raw override stays stored on the assessment.
func ScoreOverheadSquat(quality *string, armDrop bool, override *int) (*TestScore, error) {
	if override != nil {
		value, err := NormalizeOverride(*override)
		if err != nil {
			return nil, &ValidationError{Field: "squat_override", Kind: ErrKindOutOfRange, Value: *override}
		}
		return Overridden(value), nil
	}
	if quality == nil {
		return nil, nil
	}
	tier, ok := squatQualityTiers[*quality]
	if !ok {
		return nil, errUnknownValue("squat_quality", *quality)
	}
	if armDrop && tier > 0 {
		tier--
	}
	return Calculated(float64(tier) + 1), nil
}

// ScoreShoulderMobility derives a score from the hand-gap category, with
// the same override precedence and normalization as the overhead squat.
func ScoreShoulderMobility(gap *string, override *int) (*TestScore, error) {
	if override != nil {
		value, err := NormalizeOverride(*override)
		if err != nil {
			return nil, &ValidationError{Field: "shoulder_override", Kind: ErrKindOutOfRange, Value: *override}
		}
		return Overridden(value), nil
	}
	if gap == nil {
		return nil, nil
	}
	tier, ok := shoulderGapTiers[*gap]
	if !ok {
		return nil, errUnknownValue("shoulder_gap", *gap)
	}
	return Calculated(float64(tier) + 1), nil
}
