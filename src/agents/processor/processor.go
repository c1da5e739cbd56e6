// Package processor implements the payment collaborator. Authorization has
// exactly two outcomes, SUCCESS and FAILED; no partial or ambiguous states
// are modeled.
package processor

import (
	"context"

	"github.com/agentic-commerce/ap2-sim/src/mandate"
)

const DefaultName = "GlobalPay"

const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Receipt is the terminal outcome of submitting a payment mandate.
// TransactionID is set iff Status is SUCCESS.
type Receipt struct {
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Amount        float64 `json:"amount"`
	Message       string  `json:"message"`
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

// Authorize settles a payment mandate. The transaction id is derived from
// the payment id for traceability, not security.
func (a *Agent) Authorize(ctx context.Context, m mandate.Payment) Receipt {
	if err := ctx.Err(); err != nil {
		return Receipt{Status: StatusFailed, Message: err.Error()}
	}
	if m.Amount <= 0 {
		return Receipt{Status: StatusFailed, Message: "Invalid amount"}
	}
	return Receipt{
		Status:        StatusSuccess,
		TransactionID: "txn_" + m.PaymentID,
		Amount:        m.Amount,
		Message:       "Payment processed successfully",
	}
}
