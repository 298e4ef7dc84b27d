package segment

import (
	"errors"
	"fmt"
)

// ErrLanguage is returned for languages outside the supported set.
var ErrLanguage = errors.New("unsupported syllabification language")

// Syllabifier splits a single word into syllables whose concatenation
// reconstructs the word.
type Syllabifier interface {
	Syllables(word string) []string
}

// NewSyllabifier returns the syllabifier for a supported language
// ("en" or "th").
func NewSyllabifier(language string) (Syllabifier, error) {
	switch language {
	case "en":
		return englishSyllabifier{}, nil
	case "th":
		return thaiSyllabifier{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrLanguage, language)
	}
}

type englishSyllabifier struct{}

func isEnglishVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	}
	return false
}

// Syllables groups letters around vowel nuclei: a new syllable opens at
// the consonant preceding each vowel group after the first.
func (englishSyllabifier) Syllables(word string) []string {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}

	var syllables []string
	start := 0
	lastVowel := -1
	for i, r := range runes {
		if !isEnglishVowel(r) {
			continue
		}
		if lastVowel >= start && i > lastVowel+1 {
			cut := i - 1
			syllables = append(syllables, string(runes[start:cut]))
			start = cut
		}
		lastVowel = i
	}
	syllables = append(syllables, string(runes[start:]))
	return syllables
}

type thaiSyllabifier struct{}

// Thai script markers used for the split heuristic.
func isThaiLeadingVowel(r rune) bool {
	return r >= 0x0E40 && r <= 0x0E44 // sara e .. sara ai maimalai
}

func isThaiTrailingVowel(r rune) bool {
	return r == 0x0E30 || r == 0x0E33 // sara a, sara am
}

func isThaiConsonant(r rune) bool {
	return r >= 0x0E01 && r <= 0x0E2E
}

// Syllables splits before each leading vowel and after each trailing
// vowel. The rule is a coarse approximation of Thai orthography but keeps
// the partition property.
func (thaiSyllabifier) Syllables(word string) []string {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}

	var syllables []string
	start := 0
	for i := 1; i < len(runes); i++ {
		r := runes[i]
		if isThaiLeadingVowel(r) || (isThaiConsonant(r) && isThaiTrailingVowel(runes[i-1])) {
			syllables = append(syllables, string(runes[start:i]))
			start = i
		}
	}
	syllables = append(syllables, string(runes[start:]))
	return syllables
}
