package questions

import "strings"

// Slug converts text into a kebab-case anchor. Text is split into words
// (acronym runs, capitalised or lowercase words with trailing digits, single
// capitals, digit runs); everything else separates words and is dropped.
//
//	Slug("What is CSS?")          == "what-is-css"
//	Slug("XMLHttpRequest object") == "xml-http-request-object"
func Slug(text string) string {
	return strings.Join(words(text), "-")
}

func words(s string) []string {
	var out []string
	for i := 0; i < len(s); {
		n := matchWord(s, i)
		if n == 0 {
			i++
			continue
		}
		out = append(out, strings.ToLower(s[i:i+n]))
		i += n
	}
	return out
}

// matchWord returns the length of the word starting at s[i], or 0.
func matchWord(s string, i int) int {
	if isUpper(s, i) {
		if n := matchAcronym(s, i); n > 0 {
			return n
		}
		if isLower(s, i+1) {
			return 1 + lowerDigits(s, i+1)
		}
		return 1
	}
	if isLower(s, i) {
		return lowerDigits(s, i)
	}
	n := 0
	for isDigit(s, i+n) {
		n++
	}
	return n
}

// matchAcronym matches two or more capitals that end either at a word
// boundary or right before a capitalised word ("XMLHttp" yields "XML").
func matchAcronym(s string, i int) int {
	run := 0
	for isUpper(s, i+run) {
		run++
	}
	for k := run; k >= 2; k-- {
		end := i + k
		if isUpper(s, end) && isLower(s, end+1) {
			return k
		}
		if !isWordChar(s, end) {
			return k
		}
	}
	return 0
}

// lowerDigits matches [a-z]+[0-9]* at s[i].
func lowerDigits(s string, i int) int {
	n := 0
	for isLower(s, i+n) {
		n++
	}
	for isDigit(s, i+n) {
		n++
	}
	return n
}

func isUpper(s string, i int) bool { return i < len(s) && s[i] >= 'A' && s[i] <= 'Z' }
func isLower(s string, i int) bool { return i < len(s) && s[i] >= 'a' && s[i] <= 'z' }
func isDigit(s string, i int) bool { return i < len(s) && s[i] >= '0' && s[i] <= '9' }

func isWordChar(s string, i int) bool {
	return isUpper(s, i) || isLower(s, i) || isDigit(s, i) || (i < len(s) && s[i] == '_')
}
