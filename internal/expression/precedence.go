package expression

var precedence = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
}

// Precedence returns the rank of op. Unsupported symbols rank 0.
func Precedence(op string) int {
	return precedence[op]
}

// ComparePrecedence returns -1 if a binds looser than b, 1 if tighter and 0 if
// both share a tier.
func ComparePrecedence(a, b string) int {
	pa, pb := Precedence(a), Precedence(b)
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	default:
		return 0
	}
}
