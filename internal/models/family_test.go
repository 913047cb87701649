package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilyFor(t *testing.T) {
	assert.Equal(t, FamilyOpenAI, FamilyFor("gpt-4o"))
	assert.Equal(t, FamilyOpenAI, FamilyFor("gpt-4.1-mini"))
	assert.Equal(t, FamilyOpenAI, FamilyFor("o1-preview"))
	assert.Equal(t, FamilyGemini, FamilyFor("gemini-1.5-flash"))
	assert.Equal(t, FamilyGemini, FamilyFor("claude-3-opus"))
	assert.Equal(t, FamilyGemini, FamilyFor(""))
}
