package classlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		contains []string
	}{
		{
			name:     "double underscore without element",
			token:    "card__info",
			contains: []string{"single underscore", `"card_info"`},
		},
		{
			name:     "lowercase state prefix is",
			token:    "isactive",
			contains: []string{"camelCase", `"isActive"`},
		},
		{
			name:     "lowercase state prefix has",
			token:    "haschildren",
			contains: []string{"camelCase", `"hasChildren"`},
		},
		{
			name:     "uppercase in non-state token",
			token:    "Card",
			contains: []string{"lowercase"},
		},
		{
			name:     "triple underscore",
			token:    "card___deep",
			contains: []string{"two levels"},
		},
		{
			name:     "no heuristic applies",
			token:    "!!!",
			contains: []string{"does not match any recognized class pattern"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := diagnose(tt.token)
			require.NotEmpty(t, msg)
			for _, want := range tt.contains {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestDiagnoseMultipleHints(t *testing.T) {
	// "isActive__Sub" trips both the double-underscore and the uppercase
	// heuristics; both hints should appear in one message.
	msg := diagnose("card__Info")
	assert.Contains(t, msg, "single underscore")
	assert.Contains(t, msg, "lowercase")
}

func TestDiagnoseNeverEmpty(t *testing.T) {
	for _, tok := range []string{"", " ", "-", "_", "a b", "card", "ISACTIVE", "is", "has"} {
		assert.NotEmpty(t, diagnose(tok), "diagnose(%q)", tok)
	}
}

func TestStatePrefixHint(t *testing.T) {
	t.Run("prefix alone gives no hint", func(t *testing.T) {
		_, ok := statePrefixHint("is", "is")
		assert.False(t, ok)
	})

	t.Run("already uppercase gives no hint", func(t *testing.T) {
		_, ok := statePrefixHint("isActive", "is")
		assert.False(t, ok)
	})

	t.Run("non-letter after prefix gives no hint", func(t *testing.T) {
		_, ok := statePrefixHint("is-active", "is")
		assert.False(t, ok)
	})

	t.Run("lowercase letter after prefix suggests correction", func(t *testing.T) {
		hint, ok := statePrefixHint("isopen", "is")
		require.True(t, ok)
		assert.Contains(t, hint, `"isOpen"`)
	})
}
