// Package wordlist loads word lists from files.
package wordlist

import "github.com/verte-zerg/worgen/internal/model"

var wordMaterial = func() [256]bool {
	var set [256]bool
	for i := 0; i < len(model.Alphabet); i++ {
		set[model.Alphabet[i]] = true
	}
	return set
}()

// Fold lowercases ASCII letters and leaves every other byte unchanged.
func Fold(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// IsWordMaterial reports whether b, already folded, belongs to the word alphabet.
func IsWordMaterial(b byte) bool {
	return wordMaterial[b]
}
