package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns the filter applied to custom vocabularies. Only "en"
// is restricted; words must be single lowercase ASCII tokens so that a
// trimmed input can match them exactly.
func FilterForLang(lang string) FilterFunc {
	if strings.EqualFold(lang, "en") {
		return isLowerASCIIWord
	}
	return func(word string) bool { return word != "" && !strings.ContainsAny(word, " \t") }
}

func isLowerASCIIWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if ch := word[i]; ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
