// models/quiz.go - Quiz Bank Models
package models

import (
	"encoding/json"
	"time"
)

// Difficulty levels
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Quiz is a single multiple-choice question in the quiz bank. The bank also
// serves as the challenge catalog the daily challenge is drawn from.
type Quiz struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Question      string    `json:"question" gorm:"not null;type:text"`
	Options       string    `json:"-" gorm:"not null;type:text"` // JSON-encoded []string
	CorrectAnswer string    `json:"correct_answer" gorm:"not null;size:500"`
	Category      string    `json:"category" gorm:"not null;size:100;index"`
	Difficulty    string    `json:"difficulty" gorm:"default:'Easy';size:20"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// OptionList decodes the stored options. A corrupt column yields an empty
// slice rather than an error; the admin console is the only writer.
func (q *Quiz) OptionList() []string {
	var opts []string
	if err := json.Unmarshal([]byte(q.Options), &opts); err != nil {
		return []string{}
	}
	return opts
}

// SetOptionList encodes and stores the option strings.
func (q *Quiz) SetOptionList(opts []string) {
	data, _ := json.Marshal(opts)
	q.Options = string(data)
}
