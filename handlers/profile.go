// handlers/profile.go
package handlers

import (
	"quizforge/database"
	"quizforge/middleware"
	"quizforge/models"

	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetProfile returns the caller's account plus results and streak.
// GET /api/profile
func GetProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	var results []models.Result
	db.Where("user_id = ?", userID).Order("created_at DESC").Find(&results)

	streakCount := 0
	var lastDay *string
	var streak models.Streak
	if err := db.Where("user_id = ?", userID).First(&streak).Error; err == nil {
		streakCount = streak.CurrentStreak
		lastDay = streak.LastChallengeDay
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"user":               userInfo(user),
		"results":            results,
		"current_streak":     streakCount,
		"last_challenge_day": lastDay,
	})
}

// UpdateProfile changes the caller's name and/or email.
// PUT /api/profile
func UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" && req.Email != user.Email {
		var existing models.User
		if err := db.Where("email = ? AND id <> ?", req.Email, userID).First(&existing).Error; err == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Email already in use"})
		}
		user.Email = req.Email
	}

	if err := db.Save(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
		"user":    userInfo(user),
	})
}
