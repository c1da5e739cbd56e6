// Package credentials implements the credentials provider collaborator:
// payment method listing and token minting.
package credentials

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

const DefaultName = "SecureVault"

// TokenError reports a failed token mint (bad method id, negative amount, or
// an unreachable backend). The orchestrator folds it into a FAILED payment
// outcome.
type TokenError struct {
	MethodID string
	Reason   string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token generation failed for %q: %s", e.MethodID, e.Reason)
}

// Method is one stored payment instrument.
type Method struct {
	ID    string `json:"id"`
	Alias string `json:"alias"`
}

type Agent struct {
	name string
}

func New(name string) *Agent {
	if name == "" {
		name = DefaultName
	}
	return &Agent{name: name}
}

func (a *Agent) Name() string { return a.name }

// PaymentMethods lists the instruments on file for a user. The demo vault
// holds the same two instruments for everyone.
func (a *Agent) PaymentMethods(userID string) []Method {
	return []Method{
		{ID: "pm_1", Alias: "HDFC Credit Card ending 1234"},
		{ID: "pm_2", Alias: "UPI (user@upi)"},
	}
}

// GenerateToken mints an opaque payment token scoped to the given amount.
func (a *Agent) GenerateToken(ctx context.Context, paymentMethodID string, amount float64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &TokenError{MethodID: paymentMethodID, Reason: err.Error()}
	}
	if paymentMethodID == "" {
		return "", &TokenError{MethodID: paymentMethodID, Reason: "payment method not specified"}
	}
	if amount < 0 {
		return "", &TokenError{MethodID: paymentMethodID, Reason: fmt.Sprintf("negative amount %.2f", amount)}
	}
	id := uuid.New()
	return "tok_" + hex.EncodeToString(id[:])[:16], nil
}
