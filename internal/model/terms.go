package model

import (
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// secondTermPattern captures a term letter immediately following a slash or
// whitespace run, as in "A Term / B Term".
var secondTermPattern = regexp.MustCompile(`[/\s]+([ABCD])`)

// ExtractTermLetters extracts the term letters (A, B, C, D) a free-text term
// label denotes. Labels are of the historical form "A Term" or the two-term
// composite "A Term / B Term"; a label resolves to zero, one or two letters:
//  1. the first character, if it is a term letter;
//  2. a term letter following a slash or whitespace run;
//  3. the character at offset 8, a fixed-offset fallback for the
//     "A Term / B Term" format. Existing labels rely on it, so it must not
//     be removed without re-auditing the dataset.
//
// Malformed or empty labels extract to an empty set.
func ExtractTermLetters(label string) []rune {
	letters := []rune{}
	runes := []rune(strings.ToUpper(label))

	if len(runes) > 0 && isTermLetter(runes[0]) {
		letters = append(letters, runes[0])
	}

	if match := secondTermPattern.FindStringSubmatch(string(runes)); match != nil {
		letter := rune(match[1][0])
		if !slices.Contains(letters, letter) {
			letters = append(letters, letter)
		}
	}

	if len(runes) > 8 && isTermLetter(runes[8]) && !slices.Contains(letters, runes[8]) {
		letters = append(letters, runes[8])
	}

	return letters
}

// TermsOverlap reports whether two term labels denote at least one common
// term letter. Labels with no extractable letters never overlap with
// anything.
func TermsOverlap(labelA, labelB string) bool {
	return len(lo.Intersect(ExtractTermLetters(labelA), ExtractTermLetters(labelB))) > 0
}

func isTermLetter(r rune) bool {
	return r >= 'A' && r <= 'D'
}
