package token_test

import (
	"testing"
	"time"

	"go-inova/internal/shared/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParse(t *testing.T) {
	in := token.Claims{UserID: "u-1", IsSuperuser: true, StartupID: "s-1", Kind: token.KindAccess}

	raw, err := token.Sign("secret", in, time.Minute)
	require.NoError(t, err)

	out, err := token.Parse("secret", raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParse_Errors(t *testing.T) {
	raw, err := token.Sign("secret", token.Claims{UserID: "u-1"}, time.Minute)
	require.NoError(t, err)

	_, err = token.Parse("other-secret", raw)
	assert.ErrorIs(t, err, token.ErrInvalid)

	expired, err := token.Sign("secret", token.Claims{UserID: "u-1"}, -time.Minute)
	require.NoError(t, err)

	_, err = token.Parse("secret", expired)
	assert.ErrorIs(t, err, token.ErrExpired)

	_, err = token.Parse("secret", "not-a-jwt")
	assert.ErrorIs(t, err, token.ErrInvalid)

	noUser, err := token.Sign("secret", token.Claims{}, time.Minute)
	require.NoError(t, err)
	_, err = token.Parse("secret", noUser)
	assert.ErrorIs(t, err, token.ErrInvalid)
}
