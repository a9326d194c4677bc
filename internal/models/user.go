package models

import "gorm.io/gorm"

const (
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"unique" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"type:varchar(20);default:'trainer'" json:"role"`
}
