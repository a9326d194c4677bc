package scoring

import "math"

// CategoryScores holds the four aggregate scores on the 0-100 scale.
// Nil means every contributing test was skipped; the overall composer
// excludes nil categories instead of counting them as zero.
type CategoryScores struct {
	Strength *float64
	Mobility *float64
	Balance  *float64
	Cardio   *float64
}

// TestScores bundles the seven per-test scores for aggregation.
type TestScores struct {
	PushUp           *TestScore
	SingleLegBalance *TestScore
	FarmerCarry      *TestScore
	ToeTouch         *TestScore
	HarvardStep      *TestScore
	OverheadSquat    *TestScore
	ShoulderMobility *TestScore
}

// AggregateCategories groups the per-test scores into the four category
// scores: strength = push-up + farmer carry, mobility = toe touch +
// shoulder mobility, balance = single-leg balance + overhead squat,
// cardio = step test.
func AggregateCategories(scores TestScores) CategoryScores {
	return CategoryScores{
		Strength: categoryScore(scores.PushUp, scores.FarmerCarry),
		Mobility: categoryScore(scores.ToeTouch, scores.ShoulderMobility),
		Balance:  categoryScore(scores.SingleLegBalance, scores.OverheadSquat),
		Cardio:   categoryScore(scores.HarvardStep),
	}
}

// categoryScore averages the present member scores on the internal 1-4
// scale and maps the mean onto 0-100. All members nil yields nil.
func categoryScore(members ...*TestScore) *float64 {
	var sum float64
	var n int
	for _, m := range members {
		if m == nil {
			continue
		}
		sum += m.Value
		n++
	}
	if n == 0 {
		return nil
	}
	value := round1(normalizeToPercent(sum / float64(n)))
	return &value
}

// normalizeToPercent maps the internal 1-4 scale linearly onto 0-100:
// internal 1.0 -> 0, internal 4.0 -> 100.
func normalizeToPercent(internal float64) float64 {
	return clamp((internal-1)/3*100, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Scores are rounded to one decimal place for display consistency.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
