package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTermLetters(t *testing.T) {
	t.Run("single term", func(t *testing.T) {
		assert.Equal(t, []rune{'A'}, ExtractTermLetters("A Term"))
		assert.Equal(t, []rune{'D'}, ExtractTermLetters("D Term"))
	})

	t.Run("composite term", func(t *testing.T) {
		assert.Equal(t, []rune{'A', 'B'}, ExtractTermLetters("A Term / B Term"))
		assert.Equal(t, []rune{'D', 'A'}, ExtractTermLetters("D Term / A Term"))
	})

	t.Run("case-insensitive", func(t *testing.T) {
		assert.Equal(t, []rune{'C'}, ExtractTermLetters("c term"))
		assert.Equal(t, []rune{'A', 'B'}, ExtractTermLetters("a term / b term"))
	})

	t.Run("duplicate letters are recorded once", func(t *testing.T) {
		assert.Equal(t, []rune{'A'}, ExtractTermLetters("A Term / A Term"))
	})

	t.Run("fixed-offset fallback", func(t *testing.T) {
		// The second letter is neither at the front nor after a slash or
		// whitespace run, but sits at offset 8
		assert.Equal(t, []rune{'A', 'B'}, ExtractTermLetters("A Term xB Term"))
	})

	t.Run("empty and malformed labels", func(t *testing.T) {
		assert.Empty(t, ExtractTermLetters(""))
		assert.Empty(t, ExtractTermLetters("Summer Session"))
		assert.Empty(t, ExtractTermLetters("Full Year"))
	})
}

func TestTermsOverlap(t *testing.T) {
	// Arrange
	scenarios := []struct {
		labelA, labelB string
		overlap        bool
	}{
		{"A Term", "A Term", true},
		{"A Term", "C Term", false},
		{"A Term / B Term", "B Term", true},
		{"A Term / B Term", "C Term / D Term", false},
		{"a term", "A Term", true},
		{"", "A Term", false},
		{"Summer Session", "Summer Session", false},
	}

	for _, scenario := range scenarios {
		// Act & Assert
		assert.Equal(t, scenario.overlap, TermsOverlap(scenario.labelA, scenario.labelB),
			"labels %q and %q", scenario.labelA, scenario.labelB)
	}
}
