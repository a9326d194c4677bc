package scoring

import "math"

// Weights are the category weights for the overall score. They must sum
// to 1.0.
type Weights struct {
	Strength float64 `json:"strength"`
	Mobility float64 `json:"mobility"`
	Balance  float64 `json:"balance"`
	Cardio   float64 `json:"cardio"`
}

// DefaultWeights spreads the four categories evenly. Programs that
// emphasize some categories configure the engine with their own weights.
func DefaultWeights() Weights {
	return Weights{Strength: 0.25, Mobility: 0.25, Balance: 0.25, Cardio: 0.25}
}

const weightSumTolerance = 1e-9

func (w Weights) Validate() error {
	for _, v := range []float64{w.Strength, w.Mobility, w.Balance, w.Cardio} {
		if v < 0 {
			return errNegative("weights", v)
		}
	}
	sum := w.Strength + w.Mobility + w.Balance + w.Cardio
	if math.Abs(sum-1.0) > weightSumTolerance {
		return errOutOfRange("weights", sum)
	}
	return nil
}

// ComposeOverall combines the category scores into a single 0-100 score.
// Nil categories are excluded and the remaining weights renormalized to
// sum to 1.0, so a partial assessment is never dragged down by tests that
// were simply not performed. All categories nil yields nil.
func ComposeOverall(categories CategoryScores, weights Weights) *float64 {
	type weighted struct {
		score  *float64
		weight float64
	}
	members := []weighted{
		{categories.Strength, weights.Strength},
		{categories.Mobility, weights.Mobility},
		{categories.Balance, weights.Balance},
		{categories.Cardio, weights.Cardio},
	}

	var weightSum float64
	for _, m := range members {
		if m.score != nil {
			weightSum += m.weight
		}
	}
	if weightSum == 0 {
		return nil
	}

	var total float64
	for _, m := range members {
		if m.score != nil {
			total += *m.score * (m.weight / weightSum)
		}
	}
	value := round1(clamp(total, 0, 100))
	return &value
}
