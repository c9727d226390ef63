package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"quizforge/database"
	"quizforge/models"
	"quizforge/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newLeaderboardApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/leaderboard", GetLeaderboard)
	return app
}

// setupHandlerDB points the package-level database at an in-memory sqlite
// instance. With migrate false the schema is left empty so queries fail,
// standing in for a database outage.
func setupHandlerDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if migrate {
		if err := db.AutoMigrate(&models.User{}, &models.Result{}, &models.Streak{}); err != nil {
			t.Fatalf("failed to migrate test database: %v", err)
		}
	}
	database.SetDB(db)
	return db
}

func setupHandlerRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	utils.SetRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { utils.SetRedis(nil) })
	return mr
}

type leaderboardResponse struct {
	Success     bool               `json:"success"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Cached      bool               `json:"cached"`
}

func TestGetLeaderboardCachesStandings(t *testing.T) {
	db := setupHandlerDB(t, true)
	mr := setupHandlerRedis(t)
	app := newLeaderboardApp()

	user := models.User{Name: "Alice", Email: "alice@example.com", Password: "hashed", XP: 20}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	result := models.Result{UserID: user.ID, Score: 4, TotalQuestions: 5, Percentage: 80}
	if err := db.Create(&result).Error; err != nil {
		t.Fatalf("failed to create result: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/leaderboard", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var parsed leaderboardResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(parsed.Leaderboard) != 1 || parsed.Leaderboard[0].TotalScore != 4 {
		t.Errorf("unexpected standings: %+v", parsed.Leaderboard)
	}
	if !mr.Exists("leaderboard:global") {
		t.Error("expected standings to be cached after a successful query")
	}

	// Second request is served from the cache.
	resp, err = app.Test(httptest.NewRequest("GET", "/api/leaderboard", nil))
	if err != nil {
		t.Fatalf("cached request failed: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	parsed = leaderboardResponse{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("failed to decode cached response: %v", err)
	}
	if !parsed.Cached {
		t.Error("expected second request to be served from the cache")
	}
}

func TestGetLeaderboardQueryFailureIsNotCached(t *testing.T) {
	setupHandlerDB(t, false)
	mr := setupHandlerRedis(t)
	app := newLeaderboardApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/leaderboard", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Errorf("expected 500 on a failed aggregation, got %d", resp.StatusCode)
	}
	if mr.Exists("leaderboard:global") {
		t.Error("a failed aggregation must not be written to the cache")
	}
}
