package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := Result{
		Difficulty: "hard",
		HumanSide:  "dark",
		Dark:       40,
		Light:      24,
		Winner:     "dark",
		Moves:      60,
		Rules:      "classic",
	}
	id, err := store.SaveResult(want)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	got, err := store.ResultByID(id)
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("ResultByID() = nil")
	}
	want.ID = id
	want.CreatedAt = got.CreatedAt
	if *got != want {
		t.Errorf("ResultByID() = %+v, want %+v", *got, want)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	missing, err := store.ResultByID(id + 100)
	if err != nil || missing != nil {
		t.Errorf("ResultByID(missing) = %v, %v, want nil, nil", missing, err)
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(Result{Difficulty: "easy", HumanSide: "dark", Dark: 30 + i, Light: 20, Winner: "dark", Rules: "classic"})
	}
	store.SaveResult(Result{Difficulty: "hard", HumanSide: "light", Dark: 50, Light: 14, Winner: "dark", Rules: "standard"})

	recent, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(recent))
	}
	// Newest first.
	if recent[0].Difficulty != "hard" || recent[1].Dark != 34 {
		t.Errorf("Results not in expected order: %+v", recent)
	}

	easy, err := store.ResultsByDifficulty("easy", 10)
	if err != nil {
		t.Fatalf("ResultsByDifficulty() failed: %v", err)
	}
	if len(easy) != 5 {
		t.Errorf("Expected 5 easy results, got %d", len(easy))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Difficulty: "medium", HumanSide: "dark", Dark: 40, Light: 24, Winner: "dark"},  // win +16
		{Difficulty: "medium", HumanSide: "light", Dark: 20, Light: 44, Winner: "light"}, // win +24
		{Difficulty: "medium", HumanSide: "dark", Dark: 10, Light: 54, Winner: "light"},  // loss
		{Difficulty: "medium", HumanSide: "dark", Dark: 32, Light: 32, Winner: WinnerDraw},
		{Difficulty: "hard", HumanSide: "dark", Dark: 0, Light: 64, Winner: "light"},
	}
	for _, r := range results {
		r.Rules = "classic"
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	tests := []struct {
		difficulty string
		want       Stats
	}{
		{"medium", Stats{Difficulty: "medium", Games: 4, Wins: 2, Losses: 1, Draws: 1, BestMargin: 24}},
		{"hard", Stats{Difficulty: "hard", Games: 1, Losses: 1, BestMargin: -64}},
		{"", Stats{Games: 5, Wins: 2, Losses: 2, Draws: 1, BestMargin: 24}},
		{"easy", Stats{Difficulty: "easy"}},
	}
	for _, tt := range tests {
		t.Run("difficulty="+tt.difficulty, func(t *testing.T) {
			got, err := store.Stats(tt.difficulty)
			if err != nil {
				t.Fatalf("Stats() failed: %v", err)
			}
			got.LastPlayed = tt.want.LastPlayed
			if *got != tt.want {
				t.Errorf("Stats(%q) = %+v, want %+v", tt.difficulty, *got, tt.want)
			}
		})
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Difficulty: "easy", HumanSide: "dark", Winner: WinnerDraw, Rules: "classic"})
	store.SaveResult(Result{Difficulty: "hard", HumanSide: "dark", Winner: WinnerDraw, Rules: "classic"})

	if err := store.ClearResults("easy"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	if easy, _ := store.ResultsByDifficulty("easy", 10); len(easy) != 0 {
		t.Errorf("Expected 0 easy results after clear, got %d", len(easy))
	}
	if hard, _ := store.ResultsByDifficulty("hard", 10); len(hard) != 1 {
		t.Error("Hard results should not be affected by clearing easy")
	}

	if err := store.ClearResults(""); err != nil {
		t.Fatalf("ClearResults(all) failed: %v", err)
	}
	if all, _ := store.RecentResults(10); len(all) != 0 {
		t.Errorf("Expected empty ledger, got %d results", len(all))
	}
}

func TestResultOutcome(t *testing.T) {
	tests := []struct {
		r          Result
		outcome    string
		wantMargin int
	}{
		{Result{HumanSide: "dark", Dark: 40, Light: 24, Winner: "dark"}, "win", 16},
		{Result{HumanSide: "light", Dark: 40, Light: 24, Winner: "dark"}, "loss", -16},
		{Result{HumanSide: "light", Dark: 32, Light: 32, Winner: WinnerDraw}, "draw", 0},
	}
	for _, tt := range tests {
		if got := tt.r.Outcome(); got != tt.outcome {
			t.Errorf("Outcome(%+v) = %q, want %q", tt.r, got, tt.outcome)
		}
		if got := tt.r.Margin(); got != tt.wantMargin {
			t.Errorf("Margin(%+v) = %d, want %d", tt.r, got, tt.wantMargin)
		}
	}
}
