package utils_test

import (
	"context"
	"testing"
	"time"

	"quizforge/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	utils.SetRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { utils.SetRedis(nil) })
	return mr
}

func TestLeaderboardCacheRoundTrip(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	if _, ok := utils.CachedLeaderboard(ctx); ok {
		t.Fatal("expected cache miss on empty cache")
	}

	payload := `[{"name":"Alice","total_score":42}]`
	utils.StoreLeaderboard(ctx, payload, time.Minute)

	got, ok := utils.CachedLeaderboard(ctx)
	if !ok {
		t.Fatal("expected cache hit after store")
	}
	if got != payload {
		t.Errorf("expected %q, got %q", payload, got)
	}
}

func TestLeaderboardCacheExpires(t *testing.T) {
	mr := setupRedis(t)
	ctx := context.Background()

	utils.StoreLeaderboard(ctx, "[]", time.Minute)
	mr.FastForward(2 * time.Minute)

	if _, ok := utils.CachedLeaderboard(ctx); ok {
		t.Error("expected cache miss after TTL expiry")
	}
}

func TestInvalidateLeaderboard(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	utils.StoreLeaderboard(ctx, "[]", time.Minute)
	utils.InvalidateLeaderboard(ctx)

	if _, ok := utils.CachedLeaderboard(ctx); ok {
		t.Error("expected cache miss after invalidation")
	}
}

func TestNoRedisDegradesToMiss(t *testing.T) {
	utils.SetRedis(nil)
	ctx := context.Background()

	utils.StoreLeaderboard(ctx, "[]", time.Minute)
	utils.InvalidateLeaderboard(ctx)
	if _, ok := utils.CachedLeaderboard(ctx); ok {
		t.Error("expected miss with no redis configured")
	}
}
