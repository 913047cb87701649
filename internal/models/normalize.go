package models

import (
	"regexp"
	"strings"
)

var (
	// dottedNumericRe matches bare version-style identifiers such as "4.1" or "4.1.2".
	dottedNumericRe = regexp.MustCompile(`^\d+(?:\.\d+)*$`)
	// fourORe matches the "4o" shorthand family, e.g. "4o" or "4o-mini".
	fourORe = regexp.MustCompile(`^4o(?:-.+)?$`)
)

// Normalize maps a free-form model string to its canonical identifier.
// Rules are applied in order, first match wins:
//  1. already canonical ("gpt-..." or "o1...") stays unchanged
//  2. "gptX..." without the hyphen gets one inserted ("gpt4o" -> "gpt-4o")
//  3. bare dotted numerics get the "gpt-" prefix ("4.1" -> "gpt-4.1")
//  4. the "4o" shorthand gets the "gpt-" prefix ("4o-mini" -> "gpt-4o-mini")
//
// Anything else (notably Gemini-style identifiers) passes through untouched.
func Normalize(model string) string {
	m := strings.TrimSpace(model)
	if m == "" {
		return m
	}
	if strings.HasPrefix(m, "gpt-") || strings.HasPrefix(m, "o1") {
		return m
	}
	if strings.HasPrefix(m, "gpt") {
		return "gpt-" + strings.TrimPrefix(m, "gpt")
	}
	if dottedNumericRe.MatchString(m) {
		return "gpt-" + m
	}
	if fourORe.MatchString(m) {
		return "gpt-" + m
	}
	return m
}
