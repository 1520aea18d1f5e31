package mapping

import "strings"

// FullName joins first and last with a single space, trimming the ends.
func FullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func NumberOfVowels(s string) int {
	n := 0
	for _, r := range s {
		if isVowel(r) {
			n++
		}
	}
	return n
}

// NumberOfConsonants counts ASCII letters that are not vowels.
func NumberOfConsonants(s string) int {
	n := 0
	for _, r := range s {
		if isASCIILetter(r) && !isVowel(r) {
			n++
		}
	}
	return n
}

// Reverse reverses s rune by rune.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
