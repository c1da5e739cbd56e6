package credentials

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	a := New(DefaultName)

	tok, err := a.GenerateToken(context.Background(), "pm_1", 3499)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tok, "tok_"))

	other, err := a.GenerateToken(context.Background(), "pm_1", 3499)
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}

func TestGenerateTokenFailures(t *testing.T) {
	a := New(DefaultName)
	var tokenErr *TokenError

	_, err := a.GenerateToken(context.Background(), "", 3499)
	require.Error(t, err)
	assert.True(t, errors.As(err, &tokenErr))

	_, err = a.GenerateToken(context.Background(), "pm_1", -1)
	require.Error(t, err)
	assert.True(t, errors.As(err, &tokenErr))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.GenerateToken(ctx, "pm_1", 3499)
	assert.Error(t, err)
}

func TestPaymentMethods(t *testing.T) {
	a := New(DefaultName)

	methods := a.PaymentMethods("demo")
	require.Len(t, methods, 2)
	assert.Equal(t, "pm_1", methods[0].ID)
	assert.Equal(t, "pm_2", methods[1].ID)
}
