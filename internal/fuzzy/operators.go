package fuzzy

// Pure fuzzy-set operators, exposed for reuse and testing independently of
// the adjustment pipeline.

// And is the fuzzy conjunction: min(a, b).
func And(a, b float64) float64 { return min(a, b) }

// Or is the fuzzy disjunction: max(a, b).
func Or(a, b float64) float64 { return max(a, b) }

// Not is the fuzzy complement: 1 - a.
func Not(a float64) float64 { return 1.0 - a }

// Implication is the Kleene-Dienes fuzzy implication: max(1-a, b).
func Implication(antecedent, consequent float64) float64 {
	return max(1.0-antecedent, consequent)
}

// Membership is a trapezoidal membership function: 0 at or below low, 1 at or
// above high, linear in between.
func Membership(value, low, high float64) float64 {
	switch {
	case value <= low:
		return 0.0
	case value >= high:
		return 1.0
	default:
		return (value - low) / (high - low)
	}
}

// MembershipPoint pairs a crisp value with its membership degree.
type MembershipPoint struct {
	Value      float64
	Membership float64
}

// Centroid defuzzifies a membership distribution into a single representative
// value: the membership-weighted average. Zero total membership yields 0.
func Centroid(points []MembershipPoint) float64 {
	weightedSum := 0.0
	total := 0.0
	for _, p := range points {
		weightedSum += p.Value * p.Membership
		total += p.Membership
	}
	if total == 0 {
		return 0.0
	}
	return weightedSum / total
}
