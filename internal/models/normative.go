package models

import (
	"time"

	"gorm.io/gorm"
)

// NormativeDatum is one population statistic row used by the percentile
// and performance-age module. Reference data, never written by the
// scoring engine.
type NormativeDatum struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	TestName  string         `gorm:"index:idx_normative_lookup;type:varchar(30)" json:"test_name" example:"push_up"`
	Gender    string         `gorm:"index:idx_normative_lookup;type:varchar(10)" json:"gender" example:"male"`
	AgeMin    int            `gorm:"index:idx_normative_lookup" json:"age_min" example:"20"`
	AgeMax    int            `json:"age_max" example:"29"`
	Mean      float64        `json:"mean" example:"28.5"`
	StdDev    float64        `json:"std_dev" example:"8.2"`
	Sample    string         `gorm:"type:text" json:"sample" example:"ACSM adult reference population"`
}

func (n *NormativeDatum) TableName() string {
	return "normative_data"
}
