package migrations

import (
	"strings"
	"testing"
)

func TestRegistryHoldsAllMigrations(t *testing.T) {
	sorted := Migrations.Sorted()
	if len(sorted) != 2 {
		t.Fatalf("expected 2 registered migrations, got %d", len(sorted))
	}

	wantNames := []string{"20250301000001", "20250301000002"}
	for i, m := range sorted {
		if m.Name != wantNames[i] {
			t.Fatalf("migration %d: expected name %s, got %s", i, wantNames[i], m.Name)
		}
		if m.Up == nil || m.Down == nil {
			t.Fatalf("migration %s: expected both up and down funcs", m.Name)
		}
	}
}

func TestEmbeddedSchemaTargetsExpectedTables(t *testing.T) {
	if !strings.Contains(createLeaderboardSQL, "CREATE TABLE IF NOT EXISTS leaderboard_entries") {
		t.Fatalf("leaderboard migration does not create leaderboard_entries:\n%s", createLeaderboardSQL)
	}
	if !strings.Contains(createChallengeBanksSQL, "CREATE TABLE IF NOT EXISTS challenge_banks") {
		t.Fatalf("challenge bank migration does not create challenge_banks:\n%s", createChallengeBanksSQL)
	}
}
