// models/result.go
package models

import (
	"time"
)

// Result records one completed quiz attempt.
type Result struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	User           *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Score          int       `json:"score" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	Percentage     float64   `json:"percentage" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Result) TableName() string {
	return "results"
}
