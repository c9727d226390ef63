// database/seed.go - Starter Quiz Bank
package database

import (
	"log"
	"quizforge/models"

	"gorm.io/gorm"
)

type seedQuiz struct {
	question   string
	options    []string
	answer     string
	category   string
	difficulty string
}

var starterQuizzes = []seedQuiz{
	{
		question:   "Which method converts JSON data to a JavaScript object?",
		options:    []string{"JSON.parse()", "JSON.stringify()", "JSON.convert()", "JSON.toObj()"},
		answer:     "JSON.parse()",
		category:   "JavaScript",
		difficulty: models.DifficultyEasy,
	},
	{
		question:   "Which keyword declares a block-scoped variable in JavaScript?",
		options:    []string{"var", "let", "def", "scope"},
		answer:     "let",
		category:   "JavaScript",
		difficulty: models.DifficultyEasy,
	},
	{
		question:   "What does CSS stand for?",
		options:    []string{"Cascading Style Sheets", "Computer Style Sheets", "Creative Style System", "Colorful Style Sheets"},
		answer:     "Cascading Style Sheets",
		category:   "CSS",
		difficulty: models.DifficultyEasy,
	},
	{
		question:   "Which HTTP status code means 'Not Found'?",
		options:    []string{"200", "301", "404", "500"},
		answer:     "404",
		category:   "Web",
		difficulty: models.DifficultyEasy,
	},
	{
		question:   "Which data structure uses FIFO ordering?",
		options:    []string{"Stack", "Queue", "Tree", "Graph"},
		answer:     "Queue",
		category:   "Computer Science",
		difficulty: models.DifficultyMedium,
	},
	{
		question:   "What is the time complexity of binary search?",
		options:    []string{"O(n)", "O(n log n)", "O(log n)", "O(1)"},
		answer:     "O(log n)",
		category:   "Computer Science",
		difficulty: models.DifficultyMedium,
	},
	{
		question:   "Which SQL clause filters grouped rows?",
		options:    []string{"WHERE", "HAVING", "GROUP BY", "FILTER"},
		answer:     "HAVING",
		category:   "Databases",
		difficulty: models.DifficultyHard,
	},
}

// SeedQuizzes inserts the starter quiz bank on an empty database so the
// daily challenge has a catalog to draw from on first boot.
func SeedQuizzes(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Quiz{}).Count(&count).Error; err != nil {
		log.Printf("⚠️ Failed to count quizzes, skipping seed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	log.Println("🌱 Seeding starter quiz bank...")
	for _, s := range starterQuizzes {
		quiz := models.Quiz{
			Question:      s.question,
			CorrectAnswer: s.answer,
			Category:      s.category,
			Difficulty:    s.difficulty,
		}
		quiz.SetOptionList(s.options)
		if err := db.Create(&quiz).Error; err != nil {
			log.Printf("⚠️ Failed to seed quiz %q: %v", s.question, err)
		}
	}
	log.Printf("✅ Seeded %d quizzes", len(starterQuizzes))
}
