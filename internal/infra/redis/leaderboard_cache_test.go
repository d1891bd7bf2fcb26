package redis

import (
	"context"
	"testing"

	"codefix-quiz-service/internal/domain"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestLeaderboardCacheRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	cache := NewLeaderboardCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	if err := cache.Save(ctx, domain.LeaderboardEntry{Name: "Alice", Score: 150, Language: "python"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := cache.Save(ctx, domain.LeaderboardEntry{Name: "Bob", Score: 90, Language: "html"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	all, err := cache.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 cached entries, got %d", len(all))
	}
	for _, entry := range all {
		if entry.ID == "" {
			t.Fatalf("expected assigned id on %+v", entry)
		}
	}

	html, err := cache.List(ctx, "html")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(html) != 1 || html[0].Name != "Bob" {
		t.Fatalf("expected only Bob, got %+v", html)
	}
}
