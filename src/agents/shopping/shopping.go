// Package shopping implements the orchestrating shopping agent. It drives
// the mandate exchange across two externally triggered phases (intent
// submission and payment submission) and owns the only mutable protocol
// state: the active cart mandate and the step log of each session.
package shopping

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/agentic-commerce/ap2-sim/src/agents/credentials"
	"github.com/agentic-commerce/ap2-sim/src/agents/merchant"
	"github.com/agentic-commerce/ap2-sim/src/agents/processor"
	"github.com/agentic-commerce/ap2-sim/src/catalog"
	"github.com/agentic-commerce/ap2-sim/src/mandate"
)

const (
	DefaultName      = "ShopperBot"
	DefaultSessionID = "default"

	defaultTimeout = 60 * time.Second
)

// ErrNoActiveCart marks a payment attempted before any cart mandate exists.
// It never escapes the orchestrator; callers see a FAILED result instead.
var ErrNoActiveCart = errors.New("shopping: no active cart")

// LogEntry is one human-readable protocol step, attributed to the agent
// that performed it.
type LogEntry struct {
	Agent   string `json:"agent"`
	Message string `json:"message"`
}

// IntentResult is the outcome of submitting a purchase intent. Product is
// nil when nothing matched; otherwise it equals Alternatives[0], the
// cheapest candidate, preselected into the active cart.
type IntentResult struct {
	Product      *catalog.Product  `json:"product"`
	Alternatives []catalog.Product `json:"alternatives"`
	Logs         []LogEntry        `json:"agentLogs"`
}

// PaymentResult is the outcome of submitting a payment. ReceiptID is set
// iff Status is SUCCESS. Logs holds only the entries produced by this call.
type PaymentResult struct {
	Status    string     `json:"status"`
	ReceiptID *string    `json:"receiptId"`
	Logs      []LogEntry `json:"agentLogs"`
}

// session is the per-shopper critical section: cart replacement and payment
// submission against the same session never interleave.
type session struct {
	mu   sync.Mutex
	cart *mandate.Cart
	logs []LogEntry
}

func (s *session) log(agent, message string) {
	log.Printf("[%s] %s", agent, message)
	s.logs = append(s.logs, LogEntry{Agent: agent, Message: message})
}

// snapshot copies the log entries from index from onward. The copy is never
// nil so it marshals as [] rather than null.
func (s *session) snapshot(from int) []LogEntry {
	out := make([]LogEntry, len(s.logs)-from)
	copy(out, s.logs[from:])
	return out
}

// Config wires the orchestrator to its collaborators. Timeout bounds each
// collaborator call; zero means the default.
type Config struct {
	Name        string
	Merchant    *merchant.Agent
	Credentials *credentials.Agent
	Processor   *processor.Agent
	Timeout     time.Duration
}

// Agent is the shopping orchestrator. Sessions are independent; two
// sessions never share mutable state.
type Agent struct {
	name        string
	merchant    *merchant.Agent
	credentials *credentials.Agent
	processor   *processor.Agent
	timeout     time.Duration

	mu       sync.RWMutex
	sessions map[string]*session
}

func New(cfg Config) *Agent {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Agent{
		name:        cfg.Name,
		merchant:    cfg.Merchant,
		credentials: cfg.Credentials,
		processor:   cfg.Processor,
		timeout:     cfg.Timeout,
		sessions:    map[string]*session{},
	}
}

func (a *Agent) Name() string { return a.name }

func (a *Agent) session(id string) *session {
	if id == "" {
		id = DefaultSessionID
	}
	a.mu.RLock()
	s, ok := a.sessions[id]
	a.mu.RUnlock()
	if ok {
		return s
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if s, ok := a.sessions[id]; ok {
		return s
	}
	s = &session{}
	a.sessions[id] = s
	return s
}

// SubmitIntent starts a new purchase flow, discarding any prior session
// state. It records an intent mandate, asks the merchant for candidates and
// preselects the cheapest one into the active cart. A failed or empty
// lookup yields a nil Product and no cart.
func (a *Agent) SubmitIntent(ctx context.Context, sessionID, userPrompt string) IntentResult {
	s := a.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = nil
	s.cart = nil

	s.log(a.name, fmt.Sprintf("Processing User Request: '%s'", userPrompt))

	intent := mandate.NewIntent(userPrompt)
	s.log(a.name, fmt.Sprintf("Created IntentMandate: %s", intent.IntentID))

	sctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	products, err := a.merchant.SearchProducts(sctx, userPrompt)
	if err != nil {
		// Unavailable lookups read like a miss to the user but stay
		// distinguishable in the server log.
		log.Printf("shopping: product search: %v", err)
		s.log(a.merchant.Name(), "Catalog lookup unavailable, treating as no results")
	}
	if len(products) == 0 {
		s.log(a.merchant.Name(), fmt.Sprintf("No product found for query: '%s'", userPrompt))
		return IntentResult{Alternatives: []catalog.Product{}, Logs: s.snapshot(0)}
	}

	best := products[0]
	s.log(a.merchant.Name(), fmt.Sprintf("Found %d matches. Best: %s (%.0f %s)",
		len(products), best.Name, best.Price, best.Currency))

	cart, err := a.merchant.CreateCartMandate(best)
	if err != nil {
		log.Printf("shopping: cart mandate: %v", err)
		s.log(a.merchant.Name(), fmt.Sprintf("Rejected cart mandate: %v", err))
		return IntentResult{Alternatives: []catalog.Product{}, Logs: s.snapshot(0)}
	}
	s.cart = &cart
	s.log(a.merchant.Name(), fmt.Sprintf("CartMandate signed for %s", cart.ProductName))
	s.log(a.name, fmt.Sprintf("Received CartMandate: %s", cart.CartID))

	return IntentResult{Product: &best, Alternatives: products, Logs: s.snapshot(0)}
}

// SelectProduct overrides the preselected candidate: a fresh cart mandate
// replaces the active one wholesale. The previous cart is discarded, not
// versioned.
func (a *Agent) SelectProduct(ctx context.Context, sessionID string, p catalog.Product) error {
	s := a.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := a.merchant.CreateCartMandate(p)
	if err != nil {
		return err
	}
	s.cart = &cart
	s.log(a.merchant.Name(), fmt.Sprintf("CartMandate signed for %s", cart.ProductName))
	s.log(a.name, fmt.Sprintf("Cart updated to %s at %.0f", cart.ProductName, cart.Price))
	return nil
}

// SubmitPayment settles the active cart. Every failure mode (no cart, token
// mint failure, declined authorization) is folded into a FAILED result; the
// payment mandate is consumed whatever the outcome, so a second call needs a
// new intent or selection first. Returned logs are only the entries from
// this call.
func (a *Agent) SubmitPayment(ctx context.Context, sessionID, paymentMethodID string) PaymentResult {
	s := a.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	mark := len(s.logs)

	if s.cart == nil {
		log.Printf("shopping: %v", ErrNoActiveCart)
		s.log(a.name, "Error: No active cart found. Cannot process payment.")
		return PaymentResult{Status: processor.StatusFailed, Logs: s.snapshot(mark)}
	}
	cart := *s.cart

	s.log(a.credentials.Name(), "Retrieving payment methods...")

	tctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	token, err := a.credentials.GenerateToken(tctx, paymentMethodID, cart.Price)
	if err != nil {
		log.Printf("shopping: token generation: %v", err)
		s.log(a.credentials.Name(), fmt.Sprintf("Could not generate payment token: %v", err))
		return PaymentResult{Status: processor.StatusFailed, Logs: s.snapshot(mark)}
	}
	s.log(a.credentials.Name(), fmt.Sprintf("Generated secure token for %.0f", cart.Price))

	pm, err := mandate.NewPayment(cart, cart.Price, token)
	if err != nil {
		log.Printf("shopping: payment mandate: %v", err)
		s.log(a.name, fmt.Sprintf("Rejected payment mandate: %v", err))
		return PaymentResult{Status: processor.StatusFailed, Logs: s.snapshot(mark)}
	}
	s.log(a.name, fmt.Sprintf("PaymentMandate constructed and signed: %s", pm.PaymentID))

	s.log(a.processor.Name(), "Verifying PaymentMandate signature...")
	actx, acancel := context.WithTimeout(ctx, a.timeout)
	defer acancel()
	receipt := a.processor.Authorize(actx, pm)

	// Consumed exactly once: a declined payment is terminal too.
	s.cart = nil

	if receipt.Status != processor.StatusSuccess {
		s.log(a.processor.Name(), fmt.Sprintf("Transaction declined: %s", receipt.Message))
		return PaymentResult{Status: receipt.Status, Logs: s.snapshot(mark)}
	}

	s.log(a.processor.Name(), fmt.Sprintf("Transaction authorized. Receipt: %s", receipt.TransactionID))
	receiptID := receipt.TransactionID
	return PaymentResult{Status: receipt.Status, ReceiptID: &receiptID, Logs: s.snapshot(mark)}
}
