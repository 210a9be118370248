package audio

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateGermanText validates that the input is pronounceable German text:
// non-empty, Latin-script letters, no Han or Cyrillic characters.
func ValidateGermanText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	hasLatin := false
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return fmt.Errorf("text must not contain Chinese characters")
		}
		if unicode.Is(unicode.Cyrillic, r) {
			return fmt.Errorf("text must not contain Cyrillic characters")
		}
		if unicode.Is(unicode.Latin, r) {
			hasLatin = true
		}
	}

	if !hasLatin {
		return fmt.Errorf("text must contain letters")
	}

	return nil
}
