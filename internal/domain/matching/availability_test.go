package matching

import "testing"

func TestScoreAvailability_AbsentSideIsNeutral(t *testing.T) {
	if s := ScoreAvailability(nil, &WorkingHours{Start: "09:00", End: "18:00"}); !almostEqual(s, 0.7) {
		t.Fatalf("expected 0.7, got %v", s)
	}
	if s := ScoreAvailability(&WorkingHours{}, nil); !almostEqual(s, 0.7) {
		t.Fatalf("expected 0.7, got %v", s)
	}
}

func TestScoreAvailability_IdenticalHours(t *testing.T) {
	wh := &WorkingHours{Start: "09:00", End: "18:00"}
	if s := ScoreAvailability(wh, &WorkingHours{Start: "09:00", End: "18:00"}); !almostEqual(s, 1.0) {
		t.Fatalf("expected 1.0, got %v", s)
	}
}

func TestScoreAvailability_DisjointHours(t *testing.T) {
	a := &WorkingHours{Start: "06:00", End: "10:00"}
	b := &WorkingHours{Start: "14:00", End: "20:00"}
	if s := ScoreAvailability(a, b); !almostEqual(s, 0) {
		t.Fatalf("expected 0, got %v", s)
	}
}

func TestScoreAvailability_FourHourOverlapScoresAtLeastPointEight(t *testing.T) {
	a := &WorkingHours{Start: "09:00", End: "13:00"}
	b := &WorkingHours{Start: "09:00", End: "23:00"}
	s := ScoreAvailability(a, b)
	if s < 0.8 {
		t.Fatalf("expected >=0.8 for 4h overlap, got %v", s)
	}
}

func TestScoreAvailability_PartialOverlapBelowFourHours(t *testing.T) {
	a := &WorkingHours{Start: "09:00", End: "11:00"}
	b := &WorkingHours{Start: "10:00", End: "18:00"}
	// 60 minutes of overlap: (60/240)*0.8 = 0.2
	if s := ScoreAvailability(a, b); !almostEqual(s, 0.2) {
		t.Fatalf("expected 0.2, got %v", s)
	}
}

func TestScoreAvailability_EmptyFieldsUseDefaults(t *testing.T) {
	// both sides default to 09:00-18:00
	if s := ScoreAvailability(&WorkingHours{}, &WorkingHours{}); !almostEqual(s, 1.0) {
		t.Fatalf("expected 1.0, got %v", s)
	}
}

func TestScoreAvailability_MalformedTimes(t *testing.T) {
	bad := &WorkingHours{Start: "nine-ish", End: "18:00"}
	good := &WorkingHours{Start: "09:00", End: "18:00"}
	if s := ScoreAvailability(bad, good); !almostEqual(s, 0.5) {
		t.Fatalf("expected 0.5, got %v", s)
	}
	if s := ScoreAvailability(good, &WorkingHours{Start: "09:00", End: "25:61"}); !almostEqual(s, 0.5) {
		t.Fatalf("expected 0.5, got %v", s)
	}
}
