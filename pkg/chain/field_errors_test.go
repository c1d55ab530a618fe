package chain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validchain/pkg/chain"
)

func TestFieldErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("default message when empty", func(t *testing.T) {
		var errs chain.FieldErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("single error", func(t *testing.T) {
		errs := chain.FieldErrors{chain.Field("email", "is required")}
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("multiple errors joined in order", func(t *testing.T) {
		errs := chain.FieldErrors{
			chain.Field("email", "is required"),
			chain.Field("password", "too short"),
		}
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestFieldErrors_Helpers(t *testing.T) {
	t.Parallel()

	errs := chain.FieldErrors{
		chain.Field("password", "too short"),
		chain.Field("email", "is required"),
		chain.Field("password", "missing digit"),
	}

	t.Run("Has", func(t *testing.T) {
		assert.True(t, errs.Has("password"))
		assert.False(t, errs.Has("username"))
	})

	t.Run("Get preserves order", func(t *testing.T) {
		assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
		assert.Nil(t, errs.Get("username"))
	})

	t.Run("Fields deduplicates in first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"password", "email"}, errs.Fields())
	})

	t.Run("IsEmpty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, chain.FieldErrors{}.IsEmpty())
	})
}

func TestErr(t *testing.T) {
	t.Parallel()

	type form struct{ Email string }
	getEmail := func(f form) string { return f.Email }

	t.Run("nil for a valid result", func(t *testing.T) {
		res := chain.Begin[form, chain.FieldError](form{Email: "a@b.co"})
		res = chain.Presence(getEmail, chain.Field("email", "is required"), res)
		assert.NoError(t, chain.Err(res))
	})

	t.Run("FieldErrors for an invalid result", func(t *testing.T) {
		res := chain.Begin[form, chain.FieldError](form{})
		res = chain.Presence(getEmail, chain.Field("email", "is required"), res)

		err := chain.Err(res)
		require.Error(t, err)

		var fieldErrs chain.FieldErrors
		require.True(t, errors.As(err, &fieldErrs))
		assert.True(t, fieldErrs.Has("email"))
		assert.Equal(t, []string{"is required"}, fieldErrs.Get("email"))
	})
}
