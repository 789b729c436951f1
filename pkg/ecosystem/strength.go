package ecosystem

// StrengthTier buckets a relationship weight for display.
type StrengthTier string

const (
	StrengthWeak   StrengthTier = "weak"
	StrengthMedium StrengthTier = "medium"
	StrengthStrong StrengthTier = "strong"
)

const (
	strengthMediumMin = 0.4
	strengthStrongMin = 0.7
)

// TierForWeight maps a relationship weight to its strength tier. Affinity
// weights live in [0,1]; funding relationships carry monetary weights far
// above 1 and therefore always land in the strong tier. The mapping is
// monotonic: a higher weight never yields a lower tier.
func TierForWeight(weight float64) StrengthTier {
	switch {
	case weight >= strengthStrongMin:
		return StrengthStrong
	case weight >= strengthMediumMin:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}
