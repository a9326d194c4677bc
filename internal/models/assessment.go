package models

import (
	"time"

	"fitmate/internal/risk"

	"gorm.io/gorm"
)

// Push-up test variations; each maps to its own standards rows.
const (
	PushUpStandard = "standard"
	PushUpModified = "modified"
	PushUpWall     = "wall"
)

// Overhead squat movement quality categories.
const (
	SquatQualityPain        = "pain"
	SquatQualityUnable      = "unable"
	SquatQualityCompensated = "compensated"
	SquatQualityPerfect     = "perfect"
)

// Shoulder mobility hand-gap categories.
const (
	ShoulderGapPain         = "pain"
	ShoulderGapOverTwoFists = "over_two_fists"
	ShoulderGapFistAndHalf  = "fist_and_half"
	ShoulderGapWithinFist   = "within_fist"
)

// Assessment is one evaluation session for one client on one date. Raw
// measurement fields are pointers: nil means the test was not performed.
// Derived fields are recomputed by the scoring engine on every save and
// must never be written directly.
type Assessment struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	ClientID   uint           `gorm:"index" json:"client_id" example:"1"`
	Client     Client         `gorm:"foreignKey:ClientID" json:"-"`
	TrainerID  uint           `gorm:"index" json:"trainer_id" example:"1"`
	Trainer    User           `gorm:"foreignKey:TrainerID" json:"-"`
	AssessedAt time.Time      `json:"assessed_at" example:"2023-01-01T00:00:00Z"`

	// Raw measurements
	PushUpCount     *int     `json:"push_up_count" example:"40"`
	PushUpType      string   `gorm:"type:varchar(20);default:'standard'" json:"push_up_type" example:"standard"`
	BalanceLeftSec  *float64 `json:"balance_left_sec" example:"45"`
	BalanceRightSec *float64 `json:"balance_right_sec" example:"42"`
	CarryLeftSec    *float64 `json:"carry_left_sec" example:"58"`
	CarryRightSec   *float64 `json:"carry_right_sec" example:"55"`
	CarryTotalSec   *float64 `json:"carry_total_sec" example:"60"`
	ToeTouchCm      *float64 `json:"toe_touch_cm" example:"5"`
	StepHR1         *int     `json:"step_hr1" example:"70"`
	StepHR2         *int     `json:"step_hr2" example:"65"`
	StepHR3         *int     `json:"step_hr3" example:"60"`
	SquatQuality    *string  `gorm:"type:varchar(20)" json:"squat_quality" example:"perfect"`
	SquatArmDrop    bool     `json:"squat_arm_drop" example:"false"`
	ShoulderGap     *string  `gorm:"type:varchar(20)" json:"shoulder_gap" example:"within_fist"`

	// Manual overrides (0-5). When set, automatic calculation for that
	// test is suppressed and the override is normalized instead.
	SquatOverride    *int `gorm:"check:squat_override BETWEEN 0 AND 5" json:"squat_override,omitempty" example:"4"`
	ShoulderOverride *int `gorm:"check:shoulder_override BETWEEN 0 AND 5" json:"shoulder_override,omitempty" example:"4"`

	// Movement compensation flags, consumed by the risk calculator only.
	KneeValgus        bool `json:"knee_valgus" example:"false"`
	ForwardLean       bool `json:"forward_lean" example:"false"`
	HeelLift          bool `json:"heel_lift" example:"false"`
	ShoulderPain      bool `json:"shoulder_pain" example:"false"`
	ObservedAsymmetry bool `json:"observed_asymmetry" example:"false"`

	// Per-test scores on the internal 1-4 scale (nil = test not performed).
	PushUpScore           *float64 `json:"push_up_score,omitempty" example:"4"`
	SingleLegBalanceScore *float64 `json:"single_leg_balance_score,omitempty" example:"4"`
	FarmerCarryScore      *float64 `json:"farmer_carry_score,omitempty" example:"4"`
	ToeTouchScore         *float64 `json:"toe_touch_score,omitempty" example:"4"`
	HarvardStepScore      *float64 `json:"harvard_step_score,omitempty" example:"4"`
	OverheadSquatScore    *float64 `json:"overhead_squat_score,omitempty" example:"4"`
	ShoulderMobilityScore *float64 `json:"shoulder_mobility_score,omitempty" example:"4"`

	// Category scores (0-100). BalanceCategoryScore is deliberately not
	// named "balance score" to keep it apart from the single-leg test.
	StrengthScore        *float64 `json:"strength_score,omitempty" example:"100"`
	MobilityScore        *float64 `json:"mobility_score,omitempty" example:"100"`
	BalanceCategoryScore *float64 `json:"balance_category_score,omitempty" example:"100"`
	CardioScore          *float64 `json:"cardio_score,omitempty" example:"100"`

	OverallScore    *float64     `json:"overall_score,omitempty" example:"100"`
	InjuryRiskScore *float64     `json:"injury_risk_score,omitempty" example:"4.4"`
	RiskReport      *risk.Report `gorm:"serializer:json;type:jsonb" json:"risk_report,omitempty"`
}

func (a *Assessment) TableName() string {
	return "assessments"
}
