package models

import (
	"time"

	"gorm.io/gorm"
)

// Standard is one scoring threshold row: three ascending (or descending,
// for lower-is-better tests) cutoffs splitting a measurement into the
// 1-4 score bands for one test, gender, age band and variation.
// Reference data, editable only through the admin standards API.
type Standard struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	TestName  string         `gorm:"index:idx_standard_lookup;type:varchar(30)" json:"test_name" example:"push_up"`
	Gender    string         `gorm:"index:idx_standard_lookup;type:varchar(10)" json:"gender" example:"male"`
	AgeMin    int            `gorm:"index:idx_standard_lookup" json:"age_min" example:"20"`
	AgeMax    int            `json:"age_max" example:"29"`
	Variation string         `gorm:"index:idx_standard_lookup;type:varchar(20);default:''" json:"variation" example:"standard"`
	Cutoff2   float64        `json:"cutoff2" example:"22"`
	Cutoff3   float64        `json:"cutoff3" example:"29"`
	Cutoff4   float64        `json:"cutoff4" example:"36"`
	Direction string         `gorm:"type:varchar(20);default:'higher'" json:"direction" example:"higher"`
}

func (s *Standard) TableName() string {
	return "standards"
}
