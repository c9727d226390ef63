// handlers/quizzes.go - Quiz Bank CRUD
package handlers

import (
	"quizforge/database"
	"quizforge/models"

	"github.com/gofiber/fiber/v2"
)

type QuizRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
}

// QuizView is the client-facing quiz shape; the correct answer is included
// only on admin routes.
type QuizView struct {
	ID            uint     `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
}

func quizView(q models.Quiz, withAnswer bool) QuizView {
	view := QuizView{
		ID:         q.ID,
		Question:   q.Question,
		Options:    q.OptionList(),
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
	if withAnswer {
		view.CorrectAnswer = q.CorrectAnswer
	}
	return view
}

func quizViews(quizzes []models.Quiz, withAnswer bool) []QuizView {
	views := make([]QuizView, 0, len(quizzes))
	for _, q := range quizzes {
		views = append(views, quizView(q, withAnswer))
	}
	return views
}

// GetQuizzes returns the whole quiz bank.
// GET /api/quizzes
func GetQuizzes(c *fiber.Ctx) error {
	db := database.GetDB()

	var quizzes []models.Quiz
	if err := db.Order("id").Find(&quizzes).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch quizzes"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"quizzes": quizViews(quizzes, false),
		"total":   len(quizzes),
	})
}

// GetQuizzesByCategory returns quizzes for one category.
// GET /api/quizzes/category/:category
func GetQuizzesByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	db := database.GetDB()

	var quizzes []models.Quiz
	if err := db.Where("category = ?", category).Order("id").Find(&quizzes).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch quizzes"})
	}

	if len(quizzes) == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "No quizzes found for this category"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"category": category,
		"quizzes":  quizViews(quizzes, false),
	})
}

// GetRandomQuizzes returns five random quizzes for a timed attempt.
// GET /api/quizzes/random
func GetRandomQuizzes(c *fiber.Ctx) error {
	db := database.GetDB()

	var quizzes []models.Quiz
	if err := db.Order("RANDOM()").Limit(5).Find(&quizzes).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch quizzes"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"quizzes": quizViews(quizzes, false),
	})
}

// CreateQuiz adds a quiz to the bank. Admin only.
// POST /api/quizzes
func CreateQuiz(c *fiber.Ctx) error {
	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Question == "" || req.CorrectAnswer == "" || req.Category == "" || len(req.Options) < 2 {
		return c.Status(400).JSON(fiber.Map{"error": "Question, category, correct answer and at least two options required"})
	}

	quiz := models.Quiz{
		Question:      req.Question,
		CorrectAnswer: req.CorrectAnswer,
		Category:      req.Category,
		Difficulty:    req.Difficulty,
	}
	if quiz.Difficulty == "" {
		quiz.Difficulty = models.DifficultyEasy
	}
	quiz.SetOptionList(req.Options)

	db := database.GetDB()
	if err := db.Create(&quiz).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create quiz"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"quiz":    quizView(quiz, true),
	})
}

// UpdateQuiz edits a quiz in the bank. Admin only.
// PUT /api/quizzes/:id
func UpdateQuiz(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var quiz models.Quiz
	if err := db.First(&quiz, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Quiz not found"})
	}

	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Question != "" {
		quiz.Question = req.Question
	}
	if req.CorrectAnswer != "" {
		quiz.CorrectAnswer = req.CorrectAnswer
	}
	if req.Category != "" {
		quiz.Category = req.Category
	}
	if req.Difficulty != "" {
		quiz.Difficulty = req.Difficulty
	}
	if len(req.Options) >= 2 {
		quiz.SetOptionList(req.Options)
	}

	if err := db.Save(&quiz).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update quiz"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"quiz":    quizView(quiz, true),
	})
}

// DeleteQuiz removes a quiz from the bank. Admin only. Daily challenge
// records referencing it are kept as historical records.
// DELETE /api/quizzes/:id
func DeleteQuiz(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var quiz models.Quiz
	if err := db.First(&quiz, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Quiz not found"})
	}

	if err := db.Delete(&quiz).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete quiz"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quiz deleted successfully",
	})
}
