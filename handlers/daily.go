// handlers/daily.go - Daily Challenge Endpoints
//
// Thin HTTP layer over services.DailyService; all streak/XP/idempotency
// decisions live in the service.
package handlers

import (
	"errors"

	"quizforge/database"
	"quizforge/middleware"
	"quizforge/services"

	"github.com/gofiber/fiber/v2"
)

var dailyService *services.DailyService

// InitDailyHandlers wires the daily challenge service. Must run after
// database.InitDB.
func InitDailyHandlers() {
	dailyService = services.NewDailyService(database.GetDB())
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

// GetTodayChallenge returns today's challenge with the correct answer
// withheld.
// GET /api/daily
func GetTodayChallenge(c *fiber.Ctx) error {
	challenge, err := dailyService.TodayChallenge()
	if err != nil {
		if errors.Is(err, services.ErrCatalogEmpty) {
			return c.Status(404).JSON(fiber.Map{"error": "No challenge available today"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load today's challenge"})
	}

	if challenge.Quiz == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No challenge available today"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"day":        challenge.Day,
		"question":   challenge.Quiz.Question,
		"options":    challenge.Quiz.OptionList(),
		"difficulty": challenge.Quiz.Difficulty,
	})
}

// SubmitDailyChallenge scores the caller's answer for today.
// POST /api/daily/submit
func SubmitDailyChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := dailyService.Submit(userID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAnswer):
			return c.Status(400).JSON(fiber.Map{"error": "Answer must be a non-empty string"})
		case errors.Is(err, services.ErrCatalogEmpty):
			return c.Status(404).JSON(fiber.Map{"error": "No challenge available today"})
		case errors.Is(err, services.ErrSubmitConflict):
			return c.Status(503).JSON(fiber.Map{"error": "Please retry your submission"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to process submission"})
		}
	}

	response := fiber.Map{
		"success":           true,
		"correct":           result.Correct,
		"streak":            result.Streak,
		"xp":                result.XP,
		"already_completed": result.AlreadyCompleted,
		"weekly_milestone":  result.WeeklyMilestone,
	}

	switch {
	case result.AlreadyCompleted:
		response["message"] = "You've already completed today's challenge"
	case result.Correct:
		response["message"] = "Correct! XP earned"
		response["xp_earned"] = result.XPEarned
	default:
		response["message"] = "Incorrect, but you still earned XP for trying"
		response["xp_earned"] = result.XPEarned
	}

	return c.JSON(response)
}
