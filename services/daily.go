// services/daily.go - Daily Challenge Engine
//
// Owns the three pieces of state behind the daily challenge feature:
//
//   - the registry of one challenge per calendar day (daily_challenges),
//   - the per-user streak ledger (streaks),
//   - the per-user XP counter (users.xp).
//
// All correctness here derives from persisted state, never from in-flight
// request state, so a request that dies after commit is resolved by the
// idempotency guard on the next retry. Requests are handled by independent
// workers with no shared memory; serialization happens at the store:
// a unique index on daily_challenges.day for the create race, and a
// conditional UPDATE on the streak row for the submit race.
package services

import (
	"errors"
	"strings"
	"time"

	"quizforge/daykey"
	"quizforge/models"

	"gorm.io/gorm"
)

// XP awarded for the first submission of a day. Incorrect attempts still earn
// a small participation reward, which is exactly why the once-per-day guard
// matters: without it XP could be farmed by resubmitting.
const (
	XPCorrect   = 10
	XPIncorrect = 2
)

// maxSubmitAttempts bounds the transparent retry loop for lost write races.
const maxSubmitAttempts = 3

// DailyService orchestrates challenge delivery and submission scoring.
type DailyService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDailyService(db *gorm.DB) *DailyService {
	return &DailyService{db: db, now: time.Now}
}

// SubmitResult is the outcome of a submission, echoed back to the client.
type SubmitResult struct {
	Correct          bool `json:"correct"`
	Streak           int  `json:"streak"`
	XP               int  `json:"xp"`
	XPEarned         int  `json:"xp_earned"`
	AlreadyCompleted bool `json:"already_completed"`
	WeeklyMilestone  bool `json:"weekly_milestone"`
}

// TodayChallenge returns the challenge for the current UTC day, creating it
// on first read. The returned record includes the quiz with its correct
// answer; handlers must not expose the answer to clients.
func (s *DailyService) TodayChallenge() (*models.DailyChallenge, error) {
	return s.getOrCreate(daykey.Of(s.now()))
}

// Submit scores a user's answer against today's challenge, advances the
// streak ledger and credits XP, at most once per user per day.
func (s *DailyService) Submit(userID uint, answer string) (*SubmitResult, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, ErrInvalidAnswer
	}

	// One day key for the whole call, so a submission straddling midnight
	// scores against the challenge it is recorded under.
	day := daykey.Of(s.now())

	challenge, err := s.getOrCreate(day)
	if err != nil {
		return nil, err
	}
	if challenge.Quiz == nil {
		return nil, ErrCatalogEmpty
	}

	correct := scoreAnswer(answer, challenge.Quiz.CorrectAnswer)

	for attempt := 0; attempt < maxSubmitAttempts; attempt++ {
		result, retry, err := s.applySubmission(userID, day, correct)
		if err != nil {
			return nil, err
		}
		if !retry {
			return result, nil
		}
	}
	return nil, ErrSubmitConflict
}

// scoreAnswer compares case- and whitespace-insensitively; clients send the
// option text and should not be punished for copy/paste artifacts.
func scoreAnswer(answer, correctAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(correctAnswer))
}

// getOrCreate returns the challenge for day, selecting one from the quiz
// bank if the day has no record yet. Safe under concurrent first reads: the
// unique index on day rejects the losing insert, which then re-reads the
// winner's record.
func (s *DailyService) getOrCreate(day daykey.Key) (*models.DailyChallenge, error) {
	var challenge models.DailyChallenge
	err := s.db.Preload("Quiz").Where("day = ?", day.String()).First(&challenge).Error
	if err == nil {
		return &challenge, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	quiz, err := s.pickQuiz(day)
	if err != nil {
		return nil, err
	}

	challenge = models.DailyChallenge{Day: day.String(), QuizID: quiz.ID}
	if createErr := s.db.Create(&challenge).Error; createErr != nil {
		if rereadErr := s.db.Preload("Quiz").Where("day = ?", day.String()).First(&challenge).Error; rereadErr != nil {
			return nil, createErr
		}
		return &challenge, nil
	}

	challenge.Quiz = quiz
	return &challenge, nil
}

// pickQuiz selects a uniformly random quiz from the bank, skipping
// yesterday's pick when the bank holds more than one quiz.
func (s *DailyService) pickQuiz(day daykey.Key) (*models.Quiz, error) {
	query := s.db.Model(&models.Quiz{})

	var yesterday models.DailyChallenge
	prev := daykey.Of(day.Time().AddDate(0, 0, -1))
	if err := s.db.Where("day = ?", prev.String()).First(&yesterday).Error; err == nil {
		var remaining int64
		s.db.Model(&models.Quiz{}).Where("id <> ?", yesterday.QuizID).Count(&remaining)
		if remaining > 0 {
			query = query.Where("id <> ?", yesterday.QuizID)
		}
	}

	var quiz models.Quiz
	if err := query.Order("RANDOM()").First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogEmpty
		}
		return nil, err
	}
	return &quiz, nil
}

// applySubmission runs one attempt of the read-check-write cycle. retry is
// true when a concurrent submission for the same user won the write race;
// the caller loops, and the fresh ledger read then hits the guard.
func (s *DailyService) applySubmission(userID uint, day daykey.Key, correct bool) (result *SubmitResult, retry bool, err error) {
	ledger, err := s.loadOrCreateLedger(userID)
	if err != nil {
		return nil, false, err
	}

	// Idempotency guard: at most one scored submission per user per day.
	// Evaluated on a fresh read each attempt, so a retry after a committed
	// but unacknowledged update resolves here instead of double-counting.
	if ledger.LastChallengeDay != nil && daykey.IsSame(daykey.Key(*ledger.LastChallengeDay), day) {
		var user models.User
		if err := s.db.First(&user, userID).Error; err != nil {
			return nil, false, err
		}
		return &SubmitResult{
			Correct:          correct,
			Streak:           ledger.CurrentStreak,
			XP:               user.XP,
			AlreadyCompleted: true,
		}, false, nil
	}

	// Streak transition: continuation only when the previous completion was
	// exactly yesterday; anything else (first ever, gap, clock skew putting
	// today before the recorded day) restarts at 1.
	nextStreak := 1
	continued := false
	if ledger.LastChallengeDay != nil && daykey.IsNext(daykey.Key(*ledger.LastChallengeDay), day) {
		nextStreak = ledger.CurrentStreak + 1
		continued = true
	}

	xpDelta := XPIncorrect
	if correct {
		xpDelta = XPCorrect
	}

	var newXP int
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// The conditional update is the serialization point: of two
		// concurrent submissions for one user, exactly one matches the
		// WHERE clause. Streak and XP commit or roll back together.
		res := tx.Model(&models.Streak{}).
			Where("user_id = ? AND (last_challenge_day IS NULL OR last_challenge_day <> ?)", userID, day.String()).
			Updates(map[string]interface{}{
				"current_streak":     nextStreak,
				"last_challenge_day": day.String(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errLostRace
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("xp", gorm.Expr("xp + ?", xpDelta)).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		newXP = user.XP
		return nil
	})
	if errors.Is(err, errLostRace) {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &SubmitResult{
		Correct:          correct,
		Streak:           nextStreak,
		XP:               newXP,
		XPEarned:         xpDelta,
		AlreadyCompleted: false,
		WeeklyMilestone:  continued && nextStreak%7 == 0,
	}, false, nil
}

// loadOrCreateLedger fetches a user's streak ledger, creating the initial
// (0, never) record on first contact. The unique index on user_id resolves
// concurrent first submissions the same way the challenge registry does.
func (s *DailyService) loadOrCreateLedger(userID uint) (*models.Streak, error) {
	var ledger models.Streak
	err := s.db.Where("user_id = ?", userID).First(&ledger).Error
	if err == nil {
		return &ledger, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ledger = models.Streak{UserID: userID}
	if createErr := s.db.Create(&ledger).Error; createErr != nil {
		if rereadErr := s.db.Where("user_id = ?", userID).First(&ledger).Error; rereadErr != nil {
			return nil, createErr
		}
	}
	return &ledger, nil
}
