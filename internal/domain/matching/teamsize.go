package matching

// ScoreTeamSize rates how a joining candidate fits the team's size plan.
// A full team is a hard block: no partial credit regardless of preference.
func ScoreTeamSize(current, capacity, preferred int) float64 {
	if capacity > 0 && current >= capacity {
		return 0
	}

	sizeAfterJoining := current + 1
	switch absInt(sizeAfterJoining - preferred) {
	case 0:
		return 1.0
	case 1:
		return 0.8
	case 2:
		return 0.6
	case 3:
		return 0.4
	default:
		return 0.2
	}
}
