package performance

// ScoreFunc maps an actual observation against its target onto a 0-100
// employee score. Implementations must be pure so re-scoring the same
// observation is idempotent.
type ScoreFunc func(target, actual float64) float64

// LinearCapped is the default scoring function: the actual/target ratio
// scaled to 100 and capped there. A non-positive target scores zero, never
// a division by zero.
func LinearCapped(target, actual float64) float64 {
	if target <= 0 {
		return 0
	}
	score := actual / target * 100
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// Weighted scales an employee score by the KPI's percentage weight.
// weighted_score is always derived through this, never set directly.
func Weighted(employeeScore, weight float64) float64 {
	return employeeScore * weight / 100
}
