package home

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

var validate = validator.New()

// contentForm carries free-text mission content. validator counts runes for min/max.
type contentForm struct {
	Content string `validate:"min=5,max=1000"`
}

// NormalizeContent trims surrounding whitespace and composes the text to NFC,
// so decomposed Hangul counts one character per syllable
func NormalizeContent(raw string) string {
	return norm.NFC.String(strings.TrimSpace(raw))
}

// ValidateContent normalizes raw and checks the length bounds.
// It returns the text to submit.
func ValidateContent(raw string) (string, error) {
	text := NormalizeContent(raw)
	if err := validate.Struct(contentForm{Content: text}); err != nil {
		return "", fmt.Errorf("%w: got %d characters", domain.ErrInvalidContent, utf8.RuneCountInString(text))
	}
	return text, nil
}
