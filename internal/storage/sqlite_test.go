package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 300, 200, 50} {
		if _, err := store.SaveScore(s); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", s, err)
		}
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}

	want := []int{300, 200, 100}
	for i, entry := range scores {
		if entry.Score != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, entry.Score, want[i])
		}
		if entry.CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty database reports zero, not an error
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore on empty store failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty HighScore = %d, want 0", high)
	}

	for _, s := range []int{42, 17, 99} {
		if _, err := store.SaveScore(s); err != nil {
			t.Fatal(err)
		}
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != 99 {
		t.Errorf("HighScore = %d, want 99", high)
	}
}

func TestGetStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats on empty store failed: %v", err)
	}
	if stats.Runs != 0 {
		t.Errorf("empty stats Runs = %d, want 0", stats.Runs)
	}

	for _, s := range []int{10, 20, 30} {
		if _, err := store.SaveScore(s); err != nil {
			t.Fatal(err)
		}
	}

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, want 3", stats.Runs)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, want 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, want 20", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set after saving scores")
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(500); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("got %d scores after clear, want 0", len(scores))
	}
}

func TestOpenCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "scores.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open should create missing directories: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore(1); err != nil {
		t.Errorf("SaveScore after nested Open failed: %v", err)
	}
}
