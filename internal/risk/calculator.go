package risk

import (
	"math"
	"sort"
)

// Level is the qualitative injury risk band for a 0-100 risk score.
type Level string

const (
	LevelLow         Level = "low"
	LevelLowModerate Level = "low_moderate"
	LevelModerate    Level = "moderate"
	LevelHigh        Level = "high"
)

// Factor names, stable identifiers used in stored reports and API responses.
const (
	FactorCategoryImbalance    = "category_imbalance"
	FactorBilateralAsymmetry   = "bilateral_asymmetry"
	FactorLimitedMobility      = "limited_mobility"
	FactorPoorBalance          = "poor_balance"
	FactorMovementCompensation = "movement_compensation"
	FactorLowStrength          = "low_strength"
	FactorLowCardio            = "low_cardio_fitness"
)

// Factor weights. These must sum to 1.0; see TestWeightsSumToOne.
const (
	weightImbalance    = 0.30
	weightAsymmetry    = 0.20
	weightMobility     = 0.15
	weightBalance      = 0.15
	weightCompensation = 0.10
	weightStrength     = 0.05
	weightCardio       = 0.05
)

// A category spread of 40 points or more maps to maximum imbalance severity.
const imbalanceSpreadCap = 40.0

// A 30% left/right difference maps to maximum asymmetry severity.
const asymmetryRatioCap = 0.30

// Factors whose severity exceeds this are listed as primary concerns.
const significantSeverity = 50.0

// Severity assigned to a trainer-observed asymmetry when no left/right
// hold times were recorded to measure it.
const observedAsymmetryFloor = 60.0

type Factor struct {
	Name         string  `json:"name"`
	Severity     float64 `json:"severity"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
	Description  string  `json:"description"`
}

type Report struct {
	Score           float64  `json:"score"`
	Level           Level    `json:"level"`
	Factors         []Factor `json:"factors"`
	PrimaryConcerns []string `json:"primary_concerns"`
}

// Input carries everything the calculator reads. Nil pointers mean the
// measurement or category was not recorded; absent data contributes zero
// severity, it never fails the calculation.
type Input struct {
	StrengthScore        *float64
	MobilityScore        *float64
	BalanceCategoryScore *float64
	CardioScore          *float64

	BalanceLeftSec  *float64
	BalanceRightSec *float64
	CarryLeftSec    *float64
	CarryRightSec   *float64

	KneeValgus   bool
	ForwardLean  bool
	HeelLift     bool
	ShoulderPain bool

	// Trainer-observed asymmetry, consulted when no left/right times
	// were recorded to measure it.
	ObservedAsymmetry bool
}

var factorDescriptions = map[string]string{
	FactorCategoryImbalance:    "Large gap between fitness categories",
	FactorBilateralAsymmetry:   "Meaningful left/right performance difference",
	FactorLimitedMobility:      "Limited mobility",
	FactorPoorBalance:          "Poor balance control",
	FactorMovementCompensation: "Compensation patterns observed during movement",
	FactorLowStrength:          "Low strength reserve",
	FactorLowCardio:            "Low cardiovascular fitness",
}

// Calculate derives the weighted injury risk score, its level and the
// per-factor breakdown from raw assessment inputs and category scores.
func Calculate(in Input) *Report {
	factors := []Factor{
		newFactor(FactorCategoryImbalance, imbalanceSeverity(in), weightImbalance),
		newFactor(FactorBilateralAsymmetry, asymmetrySeverity(in), weightAsymmetry),
		newFactor(FactorLimitedMobility, deficitSeverity(in.MobilityScore), weightMobility),
		newFactor(FactorPoorBalance, deficitSeverity(in.BalanceCategoryScore), weightBalance),
		newFactor(FactorMovementCompensation, compensationSeverity(in), weightCompensation),
		newFactor(FactorLowStrength, deficitSeverity(in.StrengthScore), weightStrength),
		newFactor(FactorLowCardio, deficitSeverity(in.CardioScore), weightCardio),
	}

	var score float64
	for _, f := range factors {
		score += f.Contribution
	}
	score = round1(clamp(score, 0, 100))

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Contribution > factors[j].Contribution
	})

	// Concerns are ordered by severity, not weighted contribution: a
	// severe low-weight factor is still the first thing to address.
	bySeverity := make([]Factor, len(factors))
	copy(bySeverity, factors)
	sort.SliceStable(bySeverity, func(i, j int) bool {
		return bySeverity[i].Severity > bySeverity[j].Severity
	})
	var concerns []string
	for _, f := range bySeverity {
		if f.Severity > significantSeverity {
			concerns = append(concerns, f.Description)
		}
	}

	return &Report{
		Score:           score,
		Level:           LevelForScore(score),
		Factors:         factors,
		PrimaryConcerns: concerns,
	}
}

// LevelForScore bands a 0-100 risk score; lower bounds are inclusive.
func LevelForScore(score float64) Level {
	switch {
	case score < 20:
		return LevelLow
	case score < 40:
		return LevelLowModerate
	case score < 70:
		return LevelModerate
	default:
		return LevelHigh
	}
}

func newFactor(name string, severity, weight float64) Factor {
	severity = round1(clamp(severity, 0, 100))
	return Factor{
		Name:         name,
		Severity:     severity,
		Weight:       weight,
		Contribution: round1(severity * weight),
		Description:  factorDescriptions[name],
	}
}

// imbalanceSeverity scales the spread between the best and worst present
// category scores. Fewer than two categories means no spread to judge.
func imbalanceSeverity(in Input) float64 {
	var present []float64
	for _, s := range []*float64{in.StrengthScore, in.MobilityScore, in.BalanceCategoryScore, in.CardioScore} {
		if s != nil {
			present = append(present, *s)
		}
	}
	if len(present) < 2 {
		return 0
	}
	lo, hi := present[0], present[0]
	for _, v := range present[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return (hi - lo) / imbalanceSpreadCap * 100
}

// asymmetrySeverity takes the worst relative left/right difference across
// the single-leg balance and farmer carry hold times. When neither pair
// was measured, a trainer-flagged asymmetry stands in at a fixed floor.
func asymmetrySeverity(in Input) float64 {
	worst := 0.0
	measured := false
	for _, pair := range [][2]*float64{
		{in.BalanceLeftSec, in.BalanceRightSec},
		{in.CarryLeftSec, in.CarryRightSec},
	} {
		ratio, ok := sideRatio(pair[0], pair[1])
		if !ok {
			continue
		}
		measured = true
		if ratio > worst {
			worst = ratio
		}
	}
	if !measured && in.ObservedAsymmetry {
		return observedAsymmetryFloor
	}
	return worst / asymmetryRatioCap * 100
}

func sideRatio(left, right *float64) (float64, bool) {
	if left == nil || right == nil {
		return 0, false
	}
	longer := math.Max(*left, *right)
	if longer <= 0 {
		return 0, false
	}
	return math.Abs(*left-*right) / longer, true
}

func deficitSeverity(categoryScore *float64) float64 {
	if categoryScore == nil {
		return 0
	}
	return 100 - *categoryScore
}

func compensationSeverity(in Input) float64 {
	count := 0
	for _, flag := range []bool{in.KneeValgus, in.ForwardLean, in.HeelLift, in.ShoulderPain} {
		if flag {
			count++
		}
	}
	return float64(count) / 4 * 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
