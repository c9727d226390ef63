// database/migrate.go - Database Migration Runner
package database

import (
	"log"
	"quizforge/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Result{},
		&models.DailyChallenge{},
		&models.Streak{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()
	SeedQuizzes(db)

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes beyond what AutoMigrate derives from tags.
// The unique indexes on daily_challenges.day and streaks.user_id back the
// race-safety of the daily challenge engine and must exist even if the
// struct tags are ever reshuffled.
func createIndexes() {
	db := GetDB()

	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_daily_challenges_day ON daily_challenges(day)")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_streaks_user ON streaks(user_id)")

	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_xp ON users(xp DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quizzes_category ON quizzes(category)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_results_user ON results(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC)")
}
