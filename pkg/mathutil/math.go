// Package mathutil provides integer math helper functions.
package mathutil

// CeilDiv divides a by b, rounding up. b must be positive.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}
