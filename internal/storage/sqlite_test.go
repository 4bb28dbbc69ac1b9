package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesParentDirs(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveAndRecentMatches(t *testing.T) {
	store := openTestStore(t)

	matches := []MatchResult{
		{P1Fighter: "kenzo", P2Fighter: "mira", P1Rounds: 2, P2Rounds: 0, WinnerPlayer: 1, WinnerFighter: "kenzo", DurationFrames: 4200},
		{P1Fighter: "thane", P2Fighter: "yuki", P1Rounds: 1, P2Rounds: 2, WinnerPlayer: 2, WinnerFighter: "yuki", DurationFrames: 9100},
		{P1Fighter: "mira", P2Fighter: "kenzo", P1Rounds: 2, P2Rounds: 1, WinnerPlayer: 1, WinnerFighter: "mira", DurationFrames: 7300},
	}
	for _, m := range matches {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(recent))
	}

	// Newest first
	if recent[0].WinnerFighter != "mira" {
		t.Errorf("Expected newest match winner mira, got %s", recent[0].WinnerFighter)
	}
	if recent[2].WinnerFighter != "kenzo" {
		t.Errorf("Expected oldest match winner kenzo, got %s", recent[2].WinnerFighter)
	}
	if recent[1].P1Rounds != 1 || recent[1].P2Rounds != 2 {
		t.Errorf("Round counts not preserved: got %d-%d", recent[1].P1Rounds, recent[1].P2Rounds)
	}
	if recent[0].DurationFrames != 7300 {
		t.Errorf("Expected duration 7300, got %d", recent[0].DurationFrames)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestRecentMatchesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.SaveMatch(MatchResult{
			P1Fighter: "kenzo", P2Fighter: "mira",
			P1Rounds: 2, WinnerPlayer: 1, WinnerFighter: "kenzo",
		})
		if err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recent, err := store.RecentMatches(2)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("Expected 2 matches with limit 2, got %d", len(recent))
	}
}

func TestFighterRecords(t *testing.T) {
	store := openTestStore(t)

	save := func(p1, p2 string, winner int) {
		t.Helper()
		winnerFighter := p1
		if winner == 2 {
			winnerFighter = p2
		}
		_, err := store.SaveMatch(MatchResult{
			P1Fighter: p1, P2Fighter: p2,
			WinnerPlayer: winner, WinnerFighter: winnerFighter,
		})
		if err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	save("kenzo", "mira", 1)
	save("kenzo", "thane", 1)
	save("mira", "kenzo", 2)

	records, err := store.FighterRecords()
	if err != nil {
		t.Fatalf("FighterRecords() failed: %v", err)
	}

	byID := make(map[string]FighterRecord)
	for _, r := range records {
		byID[r.FighterID] = r
	}

	if r := byID["kenzo"]; r.Wins != 3 || r.Matches != 3 {
		t.Errorf("kenzo record: expected 3 wins / 3 matches, got %d/%d", r.Wins, r.Matches)
	}
	if r := byID["mira"]; r.Wins != 0 || r.Matches != 2 {
		t.Errorf("mira record: expected 0 wins / 2 matches, got %d/%d", r.Wins, r.Matches)
	}

	// Sorted by wins descending
	if records[0].FighterID != "kenzo" {
		t.Errorf("Expected kenzo first, got %s", records[0].FighterID)
	}
}

func TestRecentMatchesEmpty(t *testing.T) {
	store := openTestStore(t)

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected no matches, got %d", len(recent))
	}
}
