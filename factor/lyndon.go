package factor

// Lyndon returns the start offsets of the Lyndon factorization of s.
//
// The factors are Lyndon words l1 ≥ l2 ≥ … ≥ lk, found by Duval's
// two-pointer scan in linear time. An empty input yields an empty list.
func Lyndon(s []byte) []int {
	starts := make([]int, 0, 8)
	k := 0
	for k < len(s) {
		i, j := k, k+1
		for j < len(s) && s[i] <= s[j] {
			if s[i] == s[j] {
				i++
			} else {
				i = k
			}
			j++
		}
		for k <= i {
			starts = append(starts, k)
			k += j - i
		}
	}
	return starts
}

// LyndonWords splits s into its Lyndon factors. The factors are views into s.
func LyndonWords(s []byte) [][]byte {
	return Split(s, Lyndon(s))
}

// Split cuts s at the given ascending start offsets. Parts share memory with s.
func Split(s []byte, starts []int) [][]byte {
	parts := make([][]byte, len(starts))
	for i, st := range starts {
		end := len(s)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		parts[i] = s[st:end:end]
	}
	return parts
}
