package services

// ComputeTotal is the whole billing rule: integer price per day times
// whole days. Days are validated upstream to be >= 1.
func ComputeTotal(pricePerDay, days int) int {
	return pricePerDay * days
}
