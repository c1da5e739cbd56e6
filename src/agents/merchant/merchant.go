// Package merchant implements the merchant collaborator: product search and
// cart-mandate issuance.
package merchant

import (
	"context"

	"github.com/agentic-commerce/ap2-sim/src/catalog"
	"github.com/agentic-commerce/ap2-sim/src/mandate"
)

const DefaultName = "ECOMSURFER"

type Agent struct {
	name    string
	catalog catalog.Searcher
}

func New(name string, searcher catalog.Searcher) *Agent {
	if name == "" {
		name = DefaultName
	}
	return &Agent{name: name, catalog: searcher}
}

func (a *Agent) Name() string { return a.name }

// SearchProducts resolves a query to an ordered candidate list (ascending by
// price, at most catalog.MaxResults). An empty slice means no match; a
// catalog.ErrUnavailable means the lookup itself failed.
func (a *Agent) SearchProducts(ctx context.Context, query string) ([]catalog.Product, error) {
	return a.catalog.Search(ctx, query)
}

// CreateCartMandate signs a cart for the given product. The cart price is
// the product price, verbatim.
func (a *Agent) CreateCartMandate(p catalog.Product) (mandate.Cart, error) {
	return mandate.NewCart(p.Name, p.Price)
}
