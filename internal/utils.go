package internal

import (
	"crypto/md5"
	"encoding/hex"
	"unicode"
)

// CacheKey returns a stable hex key for a piece of text, used to name cached
// audio files.
func CacheKey(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}

// SanitizeFilename creates a safe filename from a string, keeping German
// letters intact.
func SanitizeFilename(s string) string {
	result := make([]rune, 0, len(s))
	for _, r := range s {
		if isGermanLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			result = append(result, r)
		} else {
			result = append(result, '_')
		}
	}
	return string(result)
}

func isGermanLetter(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return true
	}
	switch r {
	case 'ä', 'ö', 'ü', 'Ä', 'Ö', 'Ü', 'ß':
		return true
	}
	return false
}
