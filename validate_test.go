package classlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClassName(t *testing.T) {
	t.Run("valid token carries its kind and no message", func(t *testing.T) {
		res := ValidateClassName("card_header", nil)
		assert.Equal(t, ValidationResult{Valid: true, Kind: KindElement}, res)
	})

	t.Run("invalid token carries a diagnostic", func(t *testing.T) {
		res := ValidateClassName("card__info", nil)
		assert.False(t, res.Valid)
		assert.Equal(t, KindNone, res.Kind)
		assert.Contains(t, res.Message, "card_info")
	})

	t.Run("allow-unknown passes untyped with a message", func(t *testing.T) {
		cfg, err := CompileConfig(Config{AllowUnknown: true})
		require.NoError(t, err)

		res := ValidateClassName("Weird__Token", cfg)
		assert.True(t, res.Valid)
		assert.Equal(t, KindNone, res.Kind)
		assert.Contains(t, res.Message, "allowed by configuration")
	})

	t.Run("allow-unknown does not alter valid tokens", func(t *testing.T) {
		cfg, err := CompileConfig(Config{AllowUnknown: true})
		require.NoError(t, err)

		res := ValidateClassName("btn--primary", cfg)
		assert.Equal(t, ValidationResult{Valid: true, Kind: KindModifier}, res)
	})
}

func TestValidateClassString(t *testing.T) {
	t.Run("results preserve token order", func(t *testing.T) {
		results := ValidateClassString("card isActive mt-2 Bad__One", nil)
		require.Len(t, results, 4)
		assert.Equal(t, KindBlock, results[0].Kind)
		assert.Equal(t, KindState, results[1].Kind)
		assert.Equal(t, KindUtility, results[2].Kind)
		assert.False(t, results[3].Valid)
	})

	t.Run("empty and whitespace-only input yields no results", func(t *testing.T) {
		assert.Empty(t, ValidateClassString("", nil))
		assert.Empty(t, ValidateClassString("   \t\n  ", nil))
	})
}

func TestGetInvalidClasses(t *testing.T) {
	t.Run("returns only failures in input order", func(t *testing.T) {
		invalid := GetInvalidClasses("card Bad__One isActive another___bad", nil)
		require.Len(t, invalid, 2)
		assert.Equal(t, "Bad__One", invalid[0].Token)
		assert.Equal(t, "another___bad", invalid[1].Token)
		assert.False(t, invalid[0].Result.Valid)
		assert.NotEmpty(t, invalid[0].Result.Message)
	})

	t.Run("all valid yields nil", func(t *testing.T) {
		assert.Empty(t, GetInvalidClasses("card card_header isActive", nil))
	})

	t.Run("allow-unknown suppresses failures", func(t *testing.T) {
		cfg, err := CompileConfig(Config{AllowUnknown: true})
		require.NoError(t, err)
		assert.Empty(t, GetInvalidClasses("card Bad__One", cfg))
	})
}

func TestValidateCSSSelector(t *testing.T) {
	t.Run("classes validate in order of appearance", func(t *testing.T) {
		results := ValidateCSSSelector(".card:hover .card_info.isActive", nil)
		require.Len(t, results, 3)
		assert.Equal(t, KindBlock, results[0].Kind)
		assert.Equal(t, KindElement, results[1].Kind)
		assert.Equal(t, KindState, results[2].Kind)
	})

	t.Run("selector without classes yields no results", func(t *testing.T) {
		assert.Empty(t, ValidateCSSSelector("div > span#main", nil))
	})

	t.Run("invalid class name in selector fails", func(t *testing.T) {
		results := ValidateCSSSelector(".card__info", nil)
		require.Len(t, results, 1)
		assert.False(t, results[0].Valid)
	})
}
