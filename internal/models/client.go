package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	TrainerID uint           `gorm:"index" json:"trainer_id" example:"1"`
	Trainer   User           `gorm:"foreignKey:TrainerID" json:"-"`
	Name      string         `json:"name" example:"Kim Minsoo"`
	Gender    string         `gorm:"type:varchar(10);check:gender IN ('male','female')" json:"gender" example:"male"`
	BirthDate time.Time      `json:"birth_date" example:"1998-03-14T00:00:00Z"`
	Phone     string         `json:"phone" example:"010-1234-5678"`
	Notes     string         `gorm:"type:text" json:"notes"`
}

func (c *Client) TableName() string {
	return "clients"
}

// AgeAt returns the client's age in full years at the given date.
func (c *Client) AgeAt(at time.Time) int {
	age := at.Year() - c.BirthDate.Year()
	if at.YearDay() < c.BirthDate.YearDay() {
		age--
	}
	return age
}
