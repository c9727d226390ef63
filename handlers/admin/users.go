// handlers/admin/users.go
package admin

import (
	"quizforge/database"
	"quizforge/middleware"
	"quizforge/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetUsers returns all users with pagination
// GET /api/admin/users
func GetUsers(c *fiber.Ctx) error {
	db := database.GetDB()

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	search := c.Query("search", "")

	offset := (page - 1) * limit

	var users []models.User
	var total int64

	query := db.Model(&models.User{})

	if search != "" {
		query = query.Where("name LIKE ? OR email LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	query.Count(&total)

	if err := query.Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetUser returns a single user by ID with their results
// GET /api/admin/users/:id
func GetUser(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var user models.User
	if err := db.Preload("Results").First(&user, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	var streak models.Streak
	currentStreak := 0
	if err := db.Where("user_id = ?", user.ID).First(&streak).Error; err == nil {
		currentStreak = streak.CurrentStreak
	}

	return c.JSON(fiber.Map{
		"user":           user,
		"current_streak": currentStreak,
	})
}

type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateUser edits a user's name, email or role. Only a superadmin may
// change roles.
// PUT /api/admin/users/:id
func UpdateUser(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" && req.Email != user.Email {
		var existing models.User
		if err := db.Where("email = ? AND id <> ?", req.Email, user.ID).First(&existing).Error; err == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Email already in use"})
		}
		user.Email = req.Email
	}
	if req.Role != "" && req.Role != user.Role {
		if middleware.GetRole(c) != models.RoleSuperAdmin {
			return c.Status(403).JSON(fiber.Map{"error": "Only a superadmin can change roles"})
		}
		switch req.Role {
		case models.RoleUser, models.RoleAdmin, models.RoleSuperAdmin:
			user.Role = req.Role
		default:
			return c.Status(400).JSON(fiber.Map{"error": "Invalid role"})
		}
	}

	if err := db.Save(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// DeleteUser removes a user and their results and streak ledger.
// DELETE /api/admin/users/:id
func DeleteUser(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	if user.Role == models.RoleSuperAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "Cannot delete a superadmin"})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Result{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Streak{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}
