// models/daily.go - Daily Challenge and Streak Models
package models

import (
	"time"
)

// DailyChallenge is the single challenge exposed for one calendar day.
// Created lazily on the first read of a day with no record, immutable after
// that, never deleted. The unique index on Day is what makes concurrent
// get-or-create race-safe: the loser's insert is rejected and it re-reads
// the winner's row.
type DailyChallenge struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Day       string    `json:"day" gorm:"uniqueIndex;not null;size:10"` // "YYYY-MM-DD" (UTC)
	QuizID    uint      `json:"quiz_id" gorm:"not null"`
	Quiz      *Quiz     `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt time.Time `json:"created_at"`
}

func (DailyChallenge) TableName() string {
	return "daily_challenges"
}

// Streak is a user's daily challenge ledger: how many consecutive days they
// have completed a submission, and the day key of the most recent one.
//
// Invariant: CurrentStreak == 0 iff LastChallengeDay == nil. The counter only
// ever moves by +1 (continuation), to 1 (first completion or reset), or not
// at all (duplicate same-day call); it is mutated exclusively by the daily
// submission processor.
type Streak struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User             *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CurrentStreak    int       `json:"current_streak" gorm:"not null;default:0"`
	LastChallengeDay *string   `json:"last_challenge_day" gorm:"size:10"` // "YYYY-MM-DD", nil if never
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Streak) TableName() string {
	return "streaks"
}
