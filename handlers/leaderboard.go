// handlers/leaderboard.go
package handlers

import (
	"encoding/json"
	"time"

	"quizforge/database"
	"quizforge/models"
	"quizforge/utils"

	"github.com/gofiber/fiber/v2"
)

type LeaderboardEntry struct {
	UserID            uint    `json:"user_id"`
	Name              string  `json:"name"`
	TotalScore        int     `json:"total_score"`
	AveragePercentage float64 `json:"average_percentage"`
	Attempts          int     `json:"attempts"`
	XP                int     `json:"xp"`
	Streak            int     `json:"streak"`
}

const leaderboardTTL = time.Minute

// GetLeaderboard aggregates every user's results into global standings,
// ordered by total score. Served from the Redis cache when warm; the cache
// is invalidated whenever a new result lands.
// GET /api/leaderboard
func GetLeaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	if payload, ok := utils.CachedLeaderboard(c.Context()); ok {
		var entries []LeaderboardEntry
		if err := json.Unmarshal([]byte(payload), &entries); err == nil {
			if len(entries) > limit {
				entries = entries[:limit]
			}
			return c.JSON(fiber.Map{
				"success":     true,
				"leaderboard": entries,
				"cached":      true,
			})
		}
	}

	db := database.GetDB()

	var entries []LeaderboardEntry
	err := db.Raw(`
		SELECT
			u.id AS user_id,
			u.name,
			u.xp,
			COALESCE(SUM(r.score), 0) AS total_score,
			COALESCE(AVG(r.percentage), 0) AS average_percentage,
			COUNT(r.id) AS attempts,
			COALESCE(s.current_streak, 0) AS streak
		FROM users u
		LEFT JOIN results r ON r.user_id = u.id
		LEFT JOIN streaks s ON s.user_id = u.id
		GROUP BY u.id, u.name, u.xp, s.current_streak
		ORDER BY total_score DESC, u.xp DESC
		LIMIT 100
	`).Scan(&entries).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}

	// Only a successfully scanned payload goes into the cache.
	if payload, err := json.Marshal(entries); err == nil {
		utils.StoreLeaderboard(c.Context(), string(payload), leaderboardTTL)
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}

	var total int64
	db.Model(&models.User{}).Count(&total)

	return c.JSON(fiber.Map{
		"success":     true,
		"leaderboard": entries,
		"total":       total,
	})
}
