// Package catalog provides the product lookup capability behind the
// merchant agent. The lookup mechanism is pluggable: model-backed via
// OpenRouter, cached through redis, or a fixed in-memory catalog.
package catalog

import (
	"context"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
)

// ErrUnavailable marks a lookup that could not be completed (missing
// credentials, network failure, unparseable backend data). Callers treat it
// like an empty result for user-facing purposes but can distinguish it for
// logging.
var ErrUnavailable = errors.New("catalog: search unavailable")

// MaxResults caps every search at this many candidates.
const MaxResults = 3

// Product is one purchasable catalog entry. JSON keys match the wire format
// the front end expects.
type Product struct {
	ID          string  `json:"product_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Merchant    string  `json:"merchant"`
}

// Searcher resolves a free-text query to an ordered candidate list.
// Results, when non-empty, are sorted ascending by price and capped at
// MaxResults. An empty slice with a nil error means "no match".
type Searcher interface {
	Search(ctx context.Context, query string) ([]Product, error)
}

func newProductID() string {
	id := uuid.New()
	return "prod_" + hex.EncodeToString(id[:])[:8]
}
