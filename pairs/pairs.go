// Package pairs counts matching pairs among colored socks.
package pairs

// Frequencies maps every distinct color to the number of times it occurs.
func Frequencies[T comparable](colors []T) map[T]int {
	freq := make(map[T]int)
	for _, c := range colors {
		freq[c]++
	}
	return freq
}

// Count returns how many disjoint pairs of equal colors can be formed.
// Each color contributes its count divided by two.
func Count[T comparable](colors []T) int {
	return CountFrequencies(Frequencies(colors))
}

// CountFrequencies is Count over an already built frequency table.
func CountFrequencies[T comparable](freq map[T]int) int {
	total := 0
	for _, n := range freq {
		total += n / 2
	}
	return total
}
