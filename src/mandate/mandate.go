// Package mandate defines the three signed records exchanged during a
// purchase flow: intent, cart and payment. Records are immutable once
// constructed; every invariant is checked at construction time.
//
// Signatures and tokens are opaque placeholder strings. The simulation
// models the mandate chain, not real cryptography.
package mandate

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// InvalidMandateError reports a construction-time invariant violation.
type InvalidMandateError struct {
	Field  string
	Reason string
}

func (e *InvalidMandateError) Error() string {
	return fmt.Sprintf("invalid mandate: %s %s", e.Field, e.Reason)
}

// Intent documents the user's free-text purchase request. It is the first
// record of the chain and is kept for the audit trail only; nothing
// downstream dereferences it.
type Intent struct {
	IntentID   string `json:"intent_id"`
	UserPrompt string `json:"user_prompt"`
}

// NewIntent mints an intent record for a user prompt. An empty prompt is a
// valid (if useless) intent, so there is no failure mode here.
func NewIntent(userPrompt string) Intent {
	return Intent{
		IntentID:   newID("intent_", 8),
		UserPrompt: userPrompt,
	}
}

// Cart binds a selected product and its price under a merchant signature.
// Exactly one cart is active per session; selecting a different product
// replaces it wholesale.
type Cart struct {
	CartID            string  `json:"cart_id"`
	ProductName       string  `json:"product_name"`
	Price             float64 `json:"price"`
	MerchantSignature string  `json:"merchant_signature"`
}

// NewCart signs a cart record for a product. The price must carry over from
// the product unchanged, so callers pass it verbatim.
func NewCart(productName string, price float64) (Cart, error) {
	if productName == "" {
		return Cart{}, &InvalidMandateError{Field: "product_name", Reason: "must not be empty"}
	}
	if price < 0 {
		return Cart{}, &InvalidMandateError{Field: "price", Reason: "must not be negative"}
	}
	return Cart{
		CartID:            newID("cart_", 8),
		ProductName:       productName,
		Price:             price,
		MerchantSignature: newID("sig_merch_", 8),
	}, nil
}

// Payment authorizes charging the amount of a cart. Amount must equal the
// referenced cart's price; the mandate is consumed exactly once by the
// payment processor.
type Payment struct {
	PaymentID     string  `json:"payment_id"`
	CartID        string  `json:"cart_id"`
	Amount        float64 `json:"amount"`
	PaymentToken  string  `json:"payment_token"`
	UserSignature string  `json:"user_signature"`
}

// NewPayment signs a payment record against an existing cart.
func NewPayment(cart Cart, amount float64, token string) (Payment, error) {
	if cart.CartID == "" {
		return Payment{}, &InvalidMandateError{Field: "cart_id", Reason: "must reference a cart"}
	}
	if token == "" {
		return Payment{}, &InvalidMandateError{Field: "payment_token", Reason: "must not be empty"}
	}
	if amount < 0 {
		return Payment{}, &InvalidMandateError{Field: "amount", Reason: "must not be negative"}
	}
	if amount != cart.Price {
		return Payment{}, &InvalidMandateError{
			Field:  "amount",
			Reason: fmt.Sprintf("%.2f does not match cart price %.2f", amount, cart.Price),
		}
	}
	return Payment{
		PaymentID:     newID("pay_", 8),
		CartID:        cart.CartID,
		Amount:        amount,
		PaymentToken:  token,
		UserSignature: newID("sig_user_", 8),
	}, nil
}

func newID(prefix string, n int) string {
	id := uuid.New()
	return prefix + hex.EncodeToString(id[:])[:n]
}
