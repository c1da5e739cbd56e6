package mandate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIntentKeepsPrompt(t *testing.T) {
	m := NewIntent("I want a gaming laptop")
	assert.True(t, strings.HasPrefix(m.IntentID, "intent_"))
	assert.Equal(t, "I want a gaming laptop", m.UserPrompt)

	// An empty prompt is still a valid intent.
	empty := NewIntent("")
	assert.NotEmpty(t, empty.IntentID)
}

func TestNewCart(t *testing.T) {
	cart, err := NewCart("Redmi Note 13 5G", 16999)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cart.CartID, "cart_"))
	assert.True(t, strings.HasPrefix(cart.MerchantSignature, "sig_merch_"))
	assert.Equal(t, 16999.0, cart.Price)

	// Free products are allowed; price zero is not a violation.
	_, err = NewCart("Sample Sachet", 0)
	assert.NoError(t, err)
}

func TestNewCartRejectsInvalid(t *testing.T) {
	var invalid *InvalidMandateError

	_, err := NewCart("Redmi Note 13 5G", -1)
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, "price", invalid.Field)

	_, err = NewCart("", 999)
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, "product_name", invalid.Field)
}

func TestCartIDsUniquePerCall(t *testing.T) {
	a, err := NewCart("Coffee Maker", 3499)
	require.NoError(t, err)
	b, err := NewCart("Coffee Maker", 3499)
	require.NoError(t, err)
	assert.NotEqual(t, a.CartID, b.CartID)
	assert.NotEqual(t, a.MerchantSignature, b.MerchantSignature)
}

func TestNewPayment(t *testing.T) {
	cart, err := NewCart("Coffee Maker", 3499)
	require.NoError(t, err)

	pm, err := NewPayment(cart, cart.Price, "tok_abc123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pm.PaymentID, "pay_"))
	assert.True(t, strings.HasPrefix(pm.UserSignature, "sig_user_"))
	assert.Equal(t, cart.CartID, pm.CartID)
	assert.Equal(t, cart.Price, pm.Amount)
}

func TestNewPaymentRejectsMismatchedAmount(t *testing.T) {
	cart, err := NewCart("Coffee Maker", 3499)
	require.NoError(t, err)

	var invalid *InvalidMandateError
	_, err = NewPayment(cart, 2999, "tok_abc123")
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, "amount", invalid.Field)
}

func TestNewPaymentRejectsMissingPieces(t *testing.T) {
	cart, err := NewCart("Coffee Maker", 3499)
	require.NoError(t, err)

	_, err = NewPayment(cart, cart.Price, "")
	assert.Error(t, err)

	_, err = NewPayment(Cart{}, 0, "tok_abc123")
	assert.Error(t, err)
}
