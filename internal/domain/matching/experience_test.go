package matching

import "testing"

func TestScoreExperience_WithinRange(t *testing.T) {
	if s := ScoreExperience(LevelAdvanced, LevelIntermediate, LevelExpert); !almostEqual(s, 1.0) {
		t.Fatalf("expected 1.0, got %v", s)
	}
	if s := ScoreExperience(LevelBeginner, LevelBeginner, LevelExpert); !almostEqual(s, 1.0) {
		t.Fatalf("expected 1.0, got %v", s)
	}
}

func TestScoreExperience_OneLevelBelowMin(t *testing.T) {
	if s := ScoreExperience(LevelIntermediate, LevelAdvanced, LevelExpert); !almostEqual(s, 0.7) {
		t.Fatalf("expected 0.7, got %v", s)
	}
}

func TestScoreExperience_FarBelowMin(t *testing.T) {
	if s := ScoreExperience(LevelBeginner, LevelAdvanced, LevelExpert); !almostEqual(s, 0.3) {
		t.Fatalf("expected 0.3, got %v", s)
	}
}

func TestScoreExperience_AboveMax(t *testing.T) {
	// one over: 0.5-0.2 = 0.3
	if s := ScoreExperience(LevelAdvanced, LevelBeginner, LevelIntermediate); !almostEqual(s, 0.3) {
		t.Fatalf("expected 0.3, got %v", s)
	}
	// two over: max(0.5-0.4, 0.1) = 0.1
	if s := ScoreExperience(LevelExpert, LevelBeginner, LevelIntermediate); !almostEqual(s, 0.1) {
		t.Fatalf("expected 0.1, got %v", s)
	}
	// three over the floor still clamps at 0.1
	if s := ScoreExperience(LevelExpert, LevelBeginner, LevelBeginner); !almostEqual(s, 0.1) {
		t.Fatalf("expected 0.1, got %v", s)
	}
}

func TestScoreExperience_UnknownLabelsClampToBounds(t *testing.T) {
	// unknown candidate level resolves to beginner
	if s := ScoreExperience("wizard", LevelBeginner, LevelExpert); !almostEqual(s, 1.0) {
		t.Fatalf("expected 1.0 for unknown level in open range, got %v", s)
	}
	// unknown min resolves to beginner, unknown max to expert
	if s := ScoreExperience(LevelAdvanced, "", ""); !almostEqual(s, 1.0) {
		t.Fatalf("expected 1.0 for unknown bounds, got %v", s)
	}
}
