// Package gram produces contiguous n-grams and gapped skip-grams from
// word strings, operating on runes rather than bytes.
package gram

// Ngrams returns every contiguous substring of n runes. The result is
// empty when the word has fewer than n runes or n is not positive.
func Ngrams(word string, n int) []string {
	if n <= 0 {
		return nil
	}
	runes := []rune(word)
	if len(runes) < n {
		return nil
	}
	grams := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+n]))
	}
	return grams
}

// SkipGrams returns the subsequences obtained by taking every step-th rune
// starting at each offset in [0, step). "hello" with step 2 yields
// "hlo" and "el".
func SkipGrams(word string, step int) []string {
	if step <= 0 {
		return nil
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}
	count := min(step, len(runes))
	grams := make([]string, 0, count)
	for offset := 0; offset < count; offset++ {
		picked := make([]rune, 0, (len(runes)-offset+step-1)/step)
		for i := offset; i < len(runes); i += step {
			picked = append(picked, runes[i])
		}
		grams = append(grams, string(picked))
	}
	return grams
}
