// handlers/results.go
package handlers

import (
	"quizforge/database"
	"quizforge/middleware"
	"quizforge/models"
	"quizforge/utils"

	"github.com/gofiber/fiber/v2"
)

type SaveResultRequest struct {
	Score          int     `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	Percentage     float64 `json:"percentage"`
}

// SaveResult records a completed quiz attempt for the caller.
// POST /api/results
func SaveResult(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req SaveResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.TotalQuestions <= 0 || req.Score < 0 || req.Score > req.TotalQuestions {
		return c.Status(400).JSON(fiber.Map{"error": "Missing or invalid result fields"})
	}
	if req.Percentage < 0 || req.Percentage > 100 {
		return c.Status(400).JSON(fiber.Map{"error": "Percentage must be between 0 and 100"})
	}

	result := models.Result{
		UserID:         userID,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Percentage:     req.Percentage,
	}

	db := database.GetDB()
	if err := db.Create(&result).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save result"})
	}

	// New scores change the standings.
	utils.InvalidateLeaderboard(c.Context())

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Result saved successfully",
		"result":  result,
	})
}

// GetUserResults lists a user's results, newest first.
// GET /api/results/:userId
func GetUserResults(c *fiber.Ctx) error {
	db := database.GetDB()
	userID := c.Params("userId")

	var results []models.Result
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&results).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch results"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"results": results,
		"total":   len(results),
	})
}
