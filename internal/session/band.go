package session

// Band is the qualitative tier of a percentage score.
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// BandFor maps a score onto its tier: 75 and above is high, 50 and above is
// medium, anything else is low. Out-of-range scores fall into the nearest
// tier.
func BandFor(score int) Band {
	switch {
	case score >= 75:
		return BandHigh
	case score >= 50:
		return BandMedium
	default:
		return BandLow
	}
}

func (b Band) Label() string {
	switch b {
	case BandHigh:
		return "Excellent Match"
	case BandMedium:
		return "Good Match"
	default:
		return "Needs Improvement"
	}
}

// Color is the palette name used for the band: green, yellow or red.
func (b Band) Color() string {
	switch b {
	case BandHigh:
		return "green"
	case BandMedium:
		return "yellow"
	default:
		return "red"
	}
}

// ClampPercent bounds a score to [0,100] for drawing. Stored results are
// never clamped.
func ClampPercent(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
