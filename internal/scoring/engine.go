package scoring

import (
	"math"

	"fitmate/internal/models"
	"fitmate/internal/risk"
)

// Engine is the assessment scoring pipeline: per-test scores, category
// aggregation, overall score and the injury risk report. It holds no
// mutable state beyond the injected standards source, so one engine is
// safe to reuse across requests and batch runs.
type Engine struct {
	standards StandardsSource
	weights   Weights
}

func NewEngine(standards StandardsSource) *Engine {
	return &Engine{standards: standards, weights: DefaultWeights()}
}

// NewEngineWithWeights rejects weights that do not sum to 1.0.
func NewEngineWithWeights(standards StandardsSource, weights Weights) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{standards: standards, weights: weights}, nil
}

// CalculateScores recomputes every derived field on the assessment in
// place. It is a pure function of the raw inputs and the standards
// tables: calling it twice on identical inputs yields identical outputs,
// and it never performs I/O beyond standards lookups. The assessment's
// Client must be loaded, since scoring needs gender and age.
//
// Nothing is written to the assessment until the whole pipeline has
// succeeded, so a validation error leaves the record untouched.
func (e *Engine) CalculateScores(a *models.Assessment) error {
	if a.Client.ID == 0 && a.Client.Gender == "" {
		return &ValidationError{Field: "client", Kind: ErrKindMissing}
	}
	gender := a.Client.Gender
	if gender != models.GenderMale && gender != models.GenderFemale {
		return errUnknownValue("gender", gender)
	}
	age := a.Client.AgeAt(a.AssessedAt)
	if _, err := ResolveAgeBand(age); err != nil {
		return err
	}

	scores, err := e.scoreTests(a, gender, age)
	if err != nil {
		return err
	}

	categories := AggregateCategories(scores)
	overall := ComposeOverall(categories, e.weights)

	report := risk.Calculate(risk.Input{
		StrengthScore:        categories.Strength,
		MobilityScore:        categories.Mobility,
		BalanceCategoryScore: categories.Balance,
		CardioScore:          categories.Cardio,
		BalanceLeftSec:       a.BalanceLeftSec,
		BalanceRightSec:      a.BalanceRightSec,
		CarryLeftSec:         a.CarryLeftSec,
		CarryRightSec:        a.CarryRightSec,
		KneeValgus:           a.KneeValgus,
		ForwardLean:          a.ForwardLean,
		HeelLift:             a.HeelLift,
		ShoulderPain:         a.ShoulderPain,
		ObservedAsymmetry:    a.ObservedAsymmetry,
	})

	a.PushUpScore = scoreValue(scores.PushUp)
	a.SingleLegBalanceScore = scoreValue(scores.SingleLegBalance)
	a.FarmerCarryScore = scoreValue(scores.FarmerCarry)
	a.ToeTouchScore = scoreValue(scores.ToeTouch)
	a.HarvardStepScore = scoreValue(scores.HarvardStep)
	a.OverheadSquatScore = scoreValue(scores.OverheadSquat)
	a.ShoulderMobilityScore = scoreValue(scores.ShoulderMobility)

	a.StrengthScore = categories.Strength
	a.MobilityScore = categories.Mobility
	a.BalanceCategoryScore = categories.Balance
	a.CardioScore = categories.Cardio
	a.OverallScore = overall

	// Risk score and report always change together.
	a.InjuryRiskScore = &report.Score
	a.RiskReport = report

	return nil
}

func (e *Engine) scoreTests(a *models.Assessment, gender string, age int) (TestScores, error) {
	var scores TestScores
	var err error

	if a.PushUpCount != nil {
		pushUpType := a.PushUpType
		if pushUpType == "" {
			pushUpType = PushUpVariationStandard
		}
		scores.PushUp, err = ScorePushUp(e.standards, *a.PushUpCount, pushUpType, gender, age)
		if err != nil {
			return TestScores{}, err
		}
	}

	if a.BalanceLeftSec != nil || a.BalanceRightSec != nil {
		left, right := balanceSides(a.BalanceLeftSec, a.BalanceRightSec)
		scores.SingleLegBalance, err = ScoreSingleLegBalance(e.standards, left, right, gender, age)
		if err != nil {
			return TestScores{}, err
		}
	}

	if total := carryTotal(a); total != nil {
		scores.FarmerCarry, err = ScoreFarmerCarry(e.standards, *total, gender, age)
		if err != nil {
			return TestScores{}, err
		}
	}

	if a.ToeTouchCm != nil {
		scores.ToeTouch, err = ScoreToeTouch(e.standards, *a.ToeTouchCm, gender, age)
		if err != nil {
			return TestScores{}, err
		}
	}

	if a.StepHR1 != nil && a.StepHR2 != nil && a.StepHR3 != nil {
		scores.HarvardStep, err = ScoreHarvardStep(e.standards, *a.StepHR1, *a.StepHR2, *a.StepHR3, gender, age)
		if err != nil {
			return TestScores{}, err
		}
	}

	scores.OverheadSquat, err = ScoreOverheadSquat(a.SquatQuality, a.SquatArmDrop, a.SquatOverride)
	if err != nil {
		return TestScores{}, err
	}

	scores.ShoulderMobility, err = ScoreShoulderMobility(a.ShoulderGap, a.ShoulderOverride)
	if err != nil {
		return TestScores{}, err
	}

	return scores, nil
}

// balanceSides fills a missing side with the present one, so a single
// recorded hold still scores (the weaker-side rule then degenerates to
// that hold).
func balanceSides(left, right *float64) (float64, float64) {
	if left == nil {
		return *right, *right
	}
	if right == nil {
		return *left, *left
	}
	return *left, *right
}

// carryTotal prefers the recorded total time and falls back to the sum
// of the left/right splits.
func carryTotal(a *models.Assessment) *float64 {
	if a.CarryTotalSec != nil {
		return a.CarryTotalSec
	}
	if a.CarryLeftSec != nil && a.CarryRightSec != nil {
		total := *a.CarryLeftSec + *a.CarryRightSec
		return &total
	}
	return nil
}

func scoreValue(s *TestScore) *float64 {
	if s == nil {
		return nil
	}
	v := math.Round(s.Value*10) / 10
	return &v
}
