package memory

import (
	"testing"
	"time"

	"codefix-quiz-service/internal/domain"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()
	state := domain.NewSessionState("s1", domain.LangPython, "Alice", sampleBank().Challenges, time.Now())

	store.Put(state)
	got, ok := store.Get("s1")
	if !ok {
		t.Fatalf("expected session present")
	}
	if got.PlayerName != "Alice" || got.Language != domain.LangPython {
		t.Fatalf("unexpected session %+v", got)
	}

	got.Score = 25
	store.Put(got)
	updated, _ := store.Get("s1")
	if updated.Score != 25 {
		t.Fatalf("expected updated score, got %d", updated.Score)
	}

	store.Delete("s1")
	if _, ok := store.Get("s1"); ok {
		t.Fatalf("expected session removed")
	}
}
