package ecosystem

// TRLColor is the visual band a technology readiness level falls into.
type TRLColor string

const (
	TRLRed   TRLColor = "red"
	TRLAmber TRLColor = "amber"
	TRLGreen TRLColor = "green"
)

// ClampTRL forces a readiness level into the valid [1,9] range.
func ClampTRL(trl int) int {
	if trl < 1 {
		return 1
	}
	if trl > 9 {
		return 9
	}
	return trl
}

// ColorForTRL maps a readiness level to its band: 1-3 red, 4-6 amber,
// 7-9 green. Out-of-range input is clamped first.
func ColorForTRL(trl int) TRLColor {
	trl = ClampTRL(trl)
	switch {
	case trl >= 7:
		return TRLGreen
	case trl >= 4:
		return TRLAmber
	default:
		return TRLRed
	}
}
