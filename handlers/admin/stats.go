// handlers/admin/stats.go
package admin

import (
	"quizforge/database"
	"quizforge/models"

	"github.com/gofiber/fiber/v2"
)

type categoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// GetStats returns the admin dashboard aggregates.
// GET /api/admin/stats
func GetStats(c *fiber.Ctx) error {
	db := database.GetDB()

	var totalUsers, totalQuizzes, totalAttempts int64
	db.Model(&models.User{}).Count(&totalUsers)
	db.Model(&models.Quiz{}).Count(&totalQuizzes)
	db.Model(&models.Result{}).Count(&totalAttempts)

	var avgScore float64
	db.Model(&models.Result{}).Select("COALESCE(AVG(score), 0)").Scan(&avgScore)

	var categories []categoryCount
	db.Model(&models.Quiz{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Order("count DESC").
		Scan(&categories)

	var challengeDays int64
	db.Model(&models.DailyChallenge{}).Count(&challengeDays)

	return c.JSON(fiber.Map{
		"success":        true,
		"total_users":    totalUsers,
		"total_quizzes":  totalQuizzes,
		"total_attempts": totalAttempts,
		"avg_score":      avgScore,
		"category_stats": categories,
		"challenge_days": challengeDays,
	})
}
