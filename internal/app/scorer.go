package app

// Base point tiers by elapsed seconds. A boundary value belongs to the
// slower tier: 15s already pays 20, not 25.
const (
	tierFast   = 25
	tierQuick  = 20
	tierSteady = 15
	tierSlow   = 10

	hintPenalty = 5
)

// Points converts elapsed time and hint usage into the award for one
// challenge. Incorrect answers earn nothing regardless of time or hint, and
// the hint penalty never drives the award negative.
func Points(timeSpentSeconds int, usedHint, wasCorrect bool) int {
	if !wasCorrect {
		return 0
	}

	var points int
	switch {
	case timeSpentSeconds < 15:
		points = tierFast
	case timeSpentSeconds < 30:
		points = tierQuick
	case timeSpentSeconds < 45:
		points = tierSteady
	default:
		points = tierSlow
	}

	if usedHint {
		points -= hintPenalty
		if points < 0 {
			points = 0
		}
	}
	return points
}
