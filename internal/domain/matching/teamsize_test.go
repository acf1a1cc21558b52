package matching

import "testing"

func TestScoreTeamSize_FullTeamIsHardBlock(t *testing.T) {
	if s := ScoreTeamSize(5, 5, 6); !almostEqual(s, 0) {
		t.Fatalf("expected 0 for full team regardless of preference, got %v", s)
	}
	if s := ScoreTeamSize(6, 5, 7); !almostEqual(s, 0) {
		t.Fatalf("expected 0 for over-capacity team, got %v", s)
	}
}

func TestScoreTeamSize_JoiningHitsPreferredSize(t *testing.T) {
	if s := ScoreTeamSize(3, 5, 4); !almostEqual(s, 1.0) {
		t.Fatalf("expected 1.0, got %v", s)
	}
}

func TestScoreTeamSize_DistanceBuckets(t *testing.T) {
	cases := []struct {
		current, capacity, preferred int
		want                         float64
	}{
		{2, 10, 4, 0.8},
		{1, 10, 4, 0.6},
		{0, 10, 4, 0.4},
		{0, 10, 6, 0.2},
		{5, 10, 4, 0.6},
	}
	for _, c := range cases {
		if s := ScoreTeamSize(c.current, c.capacity, c.preferred); !almostEqual(s, c.want) {
			t.Fatalf("ScoreTeamSize(%d,%d,%d): expected %v, got %v", c.current, c.capacity, c.preferred, c.want, s)
		}
	}
}
