package discovery

// Scoring weights. Empirically tuned against real carrier payloads; keep
// them stable so re-analysis of a known payload always elects the same
// candidate.
const (
	ScorePerRole     = 2
	ScorePriceBonus  = 3
	ScoreNameBonus   = 2
	ScoreMultiRecord = 1
)

func scoreCandidate(c ArrayCandidate) int {
	seen := make(map[Role]bool)
	for _, f := range c.Fields {
		if f.Role != RoleNone {
			seen[f.Role] = true
		}
	}
	score := len(seen) * ScorePerRole
	if seen[RolePrice] {
		score += ScorePriceBonus
	}
	if seen[RoleCarrierName] {
		score += ScoreNameBonus
	}
	if c.Length > 1 {
		score += ScoreMultiRecord
	}
	return score
}

// Best returns the highest-scoring candidate; ties keep discovery order.
func Best(candidates []ArrayCandidate) (ArrayCandidate, bool) {
	if len(candidates) == 0 {
		return ArrayCandidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best, true
}
