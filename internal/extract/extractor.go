// Package extract locates a patient's name in a word sequence that is
// already in reading order. The heuristic: a capitalized word that is
// not a title, not an honorific, does not start a sentence and is not
// part of a doctor's title phrase is taken as the patient's name.
package extract

import (
	"unicode"
	"unicode/utf8"
)

// PatientName scans words left to right and returns the first one- or
// two-word span matching the patient-name heuristic, or "" when no
// word qualifies. includeFeminine extends the forbidden-title set with
// feminine title forms.
//
// The first word of the sequence is never a candidate: without a
// preceding word there is no way to tell whether it starts a sentence.
// A word directly following a forbidden title is consumed as the title
// holder's own name (e.g. "Docteur Nicolas") and skipped.
func PatientName(words []string, includeFeminine bool) string {
	skipNext := false

	for i, word := range words {
		if i == 0 {
			continue
		}
		if skipNext {
			skipNext = false
			continue
		}

		prev := words[i-1]

		if EndsSentence(prev) {
			continue
		}

		if IsForbiddenTitle(prev, includeFeminine) {
			skipNext = true
			continue
		}

		if !startsUpper(word) || IsForbiddenTitle(word, includeFeminine) {
			continue
		}

		if IsAllowedCapitalizedWord(word) {
			continue
		}

		// A following capitalized word is taken as the last name.
		if i+1 < len(words) && startsUpper(words[i+1]) {
			return word + " " + words[i+1]
		}
		return word
	}

	return ""
}

// startsUpper reports whether the first rune of s is an uppercase
// letter. Accented capitals count the same as ASCII ones.
func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
