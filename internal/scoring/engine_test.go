package scoring

import (
	"testing"
	"time"

	"fitmate/internal/models"
	"fitmate/internal/risk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// healthyAssessment is a complete session for a 25 year old male with
// every test at the top band.
func healthyAssessment() *models.Assessment {
	count := 40
	left, right := 45.0, 42.0
	total := 60.0
	reach := 5.0
	hr1, hr2, hr3 := 70, 65, 60
	quality := models.SquatQualityPerfect
	gap := models.ShoulderGapWithinFist

	return &models.Assessment{
		Client: models.Client{
			ID:        1,
			Gender:    models.GenderMale,
			BirthDate: time.Date(2000, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		AssessedAt:      time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		PushUpCount:     &count,
		PushUpType:      models.PushUpStandard,
		BalanceLeftSec:  &left,
		BalanceRightSec: &right,
		CarryTotalSec:   &total,
		ToeTouchCm:      &reach,
		StepHR1:         &hr1,
		StepHR2:         &hr2,
		StepHR3:         &hr3,
		SquatQuality:    &quality,
		ShoulderGap:     &gap,
	}
}

func TestCalculateScoresFullAssessment(t *testing.T) {
	engine := NewEngine(NewFallbackSource())
	a := healthyAssessment()

	require.NoError(t, engine.CalculateScores(a))

	for name, score := range map[string]*float64{
		"push_up":            a.PushUpScore,
		"single_leg_balance": a.SingleLegBalanceScore,
		"farmer_carry":       a.FarmerCarryScore,
		"toe_touch":          a.ToeTouchScore,
		"harvard_step":       a.HarvardStepScore,
		"overhead_squat":     a.OverheadSquatScore,
		"shoulder_mobility":  a.ShoulderMobilityScore,
	} {
		require.NotNil(t, score, name)
		assert.Equal(t, 4.0, *score, name)
	}

	for name, score := range map[string]*float64{
		"strength": a.StrengthScore,
		"mobility": a.MobilityScore,
		"balance":  a.BalanceCategoryScore,
		"cardio":   a.CardioScore,
	} {
		require.NotNil(t, score, name)
		assert.Equal(t, 100.0, *score, name)
	}

	require.NotNil(t, a.OverallScore)
	assert.Equal(t, 100.0, *a.OverallScore)

	// The only residual risk is the mild 45s/42s balance asymmetry.
	require.NotNil(t, a.InjuryRiskScore)
	require.NotNil(t, a.RiskReport)
	assert.Equal(t, *a.InjuryRiskScore, a.RiskReport.Score)
	assert.Equal(t, risk.LevelLow, a.RiskReport.Level)
	assert.Less(t, *a.InjuryRiskScore, 20.0)
	assert.Empty(t, a.RiskReport.PrimaryConcerns)
}

func TestCalculateScoresPartialAssessment(t *testing.T) {
	count := 40
	reach := 5.0
	a := &models.Assessment{
		Client: models.Client{
			ID:        1,
			Gender:    models.GenderMale,
			BirthDate: time.Date(2000, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		AssessedAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		PushUpCount: &count,
		ToeTouchCm:  &reach,
	}

	engine := NewEngine(NewFallbackSource())
	require.NoError(t, engine.CalculateScores(a))

	require.NotNil(t, a.StrengthScore)
	assert.Equal(t, 100.0, *a.StrengthScore)
	require.NotNil(t, a.MobilityScore)
	assert.Equal(t, 100.0, *a.MobilityScore)

	// Skipped categories stay nil instead of dragging the overall down.
	assert.Nil(t, a.BalanceCategoryScore)
	assert.Nil(t, a.CardioScore)
	assert.Nil(t, a.SingleLegBalanceScore)
	assert.Nil(t, a.HarvardStepScore)

	require.NotNil(t, a.OverallScore)
	assert.Equal(t, 100.0, *a.OverallScore)
}

// An empty PushUpType defaults to the standard variation.
func TestCalculateScoresDefaultPushUpVariation(t *testing.T) {
	a := healthyAssessment()
	a.PushUpType = ""

	engine := NewEngine(NewFallbackSource())
	require.NoError(t, engine.CalculateScores(a))

	require.NotNil(t, a.PushUpScore)
	assert.Equal(t, 4.0, *a.PushUpScore)
}

// A single recorded balance side still scores; the weaker-side rule
// degenerates to that hold.
func TestCalculateScoresSingleBalanceSide(t *testing.T) {
	a := healthyAssessment()
	a.BalanceRightSec = nil

	engine := NewEngine(NewFallbackSource())
	require.NoError(t, engine.CalculateScores(a))

	require.NotNil(t, a.SingleLegBalanceScore)
	assert.Equal(t, 4.0, *a.SingleLegBalanceScore)
}

// Without a recorded total, the carry score uses the sum of the splits.
func TestCalculateScoresCarrySplitFallback(t *testing.T) {
	a := healthyAssessment()
	a.CarryTotalSec = nil
	left, right := 32.0, 30.0
	a.CarryLeftSec = &left
	a.CarryRightSec = &right

	engine := NewEngine(NewFallbackSource())
	require.NoError(t, engine.CalculateScores(a))

	require.NotNil(t, a.FarmerCarryScore)
	assert.Equal(t, 4.0, *a.FarmerCarryScore)
}

// A flagged asymmetry reaches the risk calculator even when no side
// times were recorded to measure it.
func TestCalculateScoresObservedAsymmetry(t *testing.T) {
	a := healthyAssessment()
	a.BalanceLeftSec = nil
	a.BalanceRightSec = nil
	a.ObservedAsymmetry = true

	engine := NewEngine(NewFallbackSource())
	require.NoError(t, engine.CalculateScores(a))

	require.NotNil(t, a.RiskReport)
	for _, f := range a.RiskReport.Factors {
		if f.Name == risk.FactorBilateralAsymmetry {
			assert.Equal(t, 60.0, f.Severity)
			return
		}
	}
	t.Fatal("asymmetry factor missing from report")
}

func TestCalculateScoresOverrideWinsOverQuality(t *testing.T) {
	a := healthyAssessment()
	quality := models.SquatQualityUnable
	a.SquatQuality = &quality
	override := 5
	a.SquatOverride = &override

	engine := NewEngine(NewFallbackSource())
	require.NoError(t, engine.CalculateScores(a))

	require.NotNil(t, a.OverheadSquatScore)
	assert.Equal(t, 4.0, *a.OverheadSquatScore)
}

// A validation error must leave every derived field untouched.
func TestCalculateScoresAtomicOnError(t *testing.T) {
	a := healthyAssessment()
	bad := -3
	a.PushUpCount = &bad

	engine := NewEngine(NewFallbackSource())
	err := engine.CalculateScores(a)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "push_up_count", validationErr.Field)

	assert.Nil(t, a.PushUpScore)
	assert.Nil(t, a.ToeTouchScore)
	assert.Nil(t, a.StrengthScore)
	assert.Nil(t, a.OverallScore)
	assert.Nil(t, a.InjuryRiskScore)
	assert.Nil(t, a.RiskReport)
}

func TestCalculateScoresRequiresClient(t *testing.T) {
	engine := NewEngine(NewFallbackSource())

	err := engine.CalculateScores(&models.Assessment{AssessedAt: time.Now()})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "client", validationErr.Field)

	a := healthyAssessment()
	a.Client.Gender = "other"
	err = engine.CalculateScores(a)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "gender", validationErr.Field)
}

func TestCalculateScoresDeterministic(t *testing.T) {
	engine := NewEngine(NewFallbackSource())

	first := healthyAssessment()
	second := healthyAssessment()
	require.NoError(t, engine.CalculateScores(first))
	require.NoError(t, engine.CalculateScores(second))

	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.InjuryRiskScore, second.InjuryRiskScore)
	assert.Equal(t, first.RiskReport, second.RiskReport)

	// Recalculating in place is also stable.
	require.NoError(t, engine.CalculateScores(first))
	assert.Equal(t, second.OverallScore, first.OverallScore)
	assert.Equal(t, second.RiskReport, first.RiskReport)
}

func TestNewEngineWithWeightsRejectsInvalid(t *testing.T) {
	_, err := NewEngineWithWeights(NewFallbackSource(), Weights{Strength: 1, Mobility: 1})
	assert.Error(t, err)

	engine, err := NewEngineWithWeights(NewFallbackSource(), DefaultWeights())
	require.NoError(t, err)
	assert.NotNil(t, engine)
}
