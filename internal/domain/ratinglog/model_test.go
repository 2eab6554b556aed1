package ratinglog

import "testing"

func ptr[T any](v T) *T { return &v }

func completeEntry() Entry {
	return Entry{
		Player:        "Bukayo Saka",
		Round:         ptr(12),
		Date:          "2024-11-23",
		Venue:         "Home",
		Opponent:      "Nottingham Forest",
		Score:         "3:0",
		StartTime:     "0",
		EndTime:       "90",
		MinutesPlayed: ptr(90.0),
		StartResult:   "0:0",
		EndResult:     "3:0",
		MOTM:          "False",
		Influence:     ptr(0.82),
		StartElo:      ptr(1500.456),
		RatingChange:  ptr(12.3),
		EndElo:        ptr(1512.756),
	}
}

func TestEntry_Complete(t *testing.T) {
	if !completeEntry().Complete() {
		t.Fatalf("expected fully populated entry to be complete")
	}
}

func TestEntry_Complete_MissingNumeric(t *testing.T) {
	e := completeEntry()
	e.Influence = nil
	if e.Complete() {
		t.Fatalf("expected entry with nil influence to be incomplete")
	}

	e = completeEntry()
	e.RatingChange = nil
	if e.Complete() {
		t.Fatalf("expected entry with nil rating change to be incomplete")
	}
}

func TestEntry_Complete_MissingString(t *testing.T) {
	e := completeEntry()
	e.Opponent = ""
	if e.Complete() {
		t.Fatalf("expected entry with empty opponent to be incomplete")
	}
}
