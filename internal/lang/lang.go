// Package lang contains the closed English helpers that the soul uses to
// assemble messages: list joining, capitalization, possessives, articles, the
// gender word tables, and the adverb dictionary.
package lang

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Subjective maps a gender letter to its subjective pronoun word.
	Subjective = map[string]string{"m": "he", "f": "she", "n": "it"}

	// Possessive maps a gender letter to its possessive pronoun word.
	Possessives = map[string]string{"m": "his", "f": "her", "n": "its"}

	// Objective maps a gender letter to its objective pronoun word.
	Objective = map[string]string{"m": "him", "f": "her", "n": "it"}
)

// Normalize prepares a raw command line for parsing: it applies Unicode NFC
// normalization so that candidate-name lookups are byte-stable regardless of
// how the client encoded its input, and trims surrounding whitespace.
func Normalize(line string) string {
	return strings.TrimSpace(norm.NFC.String(line))
}

// Join gives a nice textual list of the given words, joined with commas and
// the conjunction before the last word: "bob", "bob and alice", "bob, alice
// and carol".
func Join(words []string, conj string) string {
	if conj == "" {
		conj = "and"
	}
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " " + conj + " " + words[1]
	default:
		return strings.Join(words[:len(words)-1], ", ") + " " + conj + " " + words[len(words)-1]
	}
}

// Capital returns the string with its first letter upper-cased.
func Capital(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Fullstop returns the string with a full stop appended, unless it already
// ends in sentence punctuation.
func Fullstop(s string) string {
	s = strings.TrimRight(s, " \t")
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?', ';', ':':
		return s
	}
	return s + "."
}

// Possessive returns the possessive form of a name: "bob's", or just an
// apostrophe when the name already ends in an s-sound.
func Possessive(name string) string {
	if name == "" {
		return ""
	}
	switch name {
	case "it":
		return "its"
	case "you":
		return "your"
	}
	switch name[len(name)-1] {
	case 's', 'z', 'x':
		return name + "'"
	}
	return name + "'s"
}

// A returns the word prefixed with its indefinite article.
func A(word string) string {
	if word == "" {
		return word
	}
	switch unicode.ToLower([]rune(word)[0]) {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + word
	}
	return "a " + word
}

// Spacify returns the string prefixed with a single space if it has contents,
// or the empty string unchanged. Template clauses are glued together this
// way so that empty slots leave no double spaces behind.
func Spacify(s string) string {
	if s == "" {
		return ""
	}
	return " " + strings.TrimLeft(s, " \t")
}
