package models

import "strings"

// Family identifies which upstream request/response shape a model uses.
type Family string

const (
	FamilyOpenAI Family = "openai"
	FamilyGemini Family = "gemini"
)

// FamilyFor routes a normalized model to its provider family. Models starting
// with "gpt" or "o1" take the OpenAI-compatible path; everything else is
// treated as Gemini-compatible.
func FamilyFor(normalized string) Family {
	if strings.HasPrefix(normalized, "gpt") || strings.HasPrefix(normalized, "o1") {
		return FamilyOpenAI
	}
	return FamilyGemini
}
