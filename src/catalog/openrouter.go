package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"time"
)

const systemPrompt = `
You are a STRICT e-commerce product catalog engine.

MANDATORY RULES:
1. If the user mentions a specific brand or model name
   (example: "Samsung S24", "iPhone 15", "Redmi Note 13"),
   return ONLY that exact product.
2. DO NOT suggest alternative brands or similar products.
3. If variants exist (RAM, storage, color, connectivity),
   return MULTIPLE VARIANTS of the SAME PRODUCT with different prices.
4. If the exact product does NOT exist, return an EMPTY products array.
5. Prices must be realistic Indian market prices (INR). Use consistent, standard MSRP values to ensure the same price is returned for the same product every time.
6. If the user specifies a budget or spending limit, RETURN ONLY products that fit within that limit.
7. DO NOT fluctuate prices. Be deterministic.
8. Respond with VALID JSON ONLY. No explanations.

TASK:
Interpret the user query as an exact product lookup. Determine if a spending limit is mentioned.
Return UP TO 3 realistic variants of the SAME product, ordered by price in ASCENDING order.

OUTPUT FORMAT:
{
  "products": [
    {
      "name": "Exact product name with variant",
      "brand": "Brand",
      "price": 0,
      "description": "Short description"
    }
  ]
}
`

// OpenRouter is the model-backed Searcher. It speaks the chat-completions
// wire format directly; a missing API key degrades every search to
// ErrUnavailable instead of failing startup.
type OpenRouter struct {
	apiKey     string
	model      string
	merchant   string
	baseURL    string
	httpClient *http.Client
}

func NewOpenRouter(apiKey, model, merchant string) *OpenRouter {
	return &OpenRouter{
		apiKey:     apiKey,
		model:      model,
		merchant:   merchant,
		baseURL:    "https://openrouter.ai/api/v1",
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

func (o *OpenRouter) Search(ctx context.Context, query string) ([]Product, error) {
	if o.apiKey == "" {
		return nil, fmt.Errorf("%w: OPENROUTER_API_KEY not configured", ErrUnavailable)
	}

	reqBody := map[string]interface{}{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": query},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     0,
		"seed":            42,
	}
	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/chat/completions", bytes.NewBuffer(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: openrouter status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &completion); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", ErrUnavailable)
	}

	var payload struct {
		Products []struct {
			Name        string  `json:"name"`
			Brand       string  `json:"brand"`
			Price       float64 `json:"price"`
			Description string  `json:"description"`
		} `json:"products"`
	}
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &payload); err != nil {
		log.Printf("catalog: unparseable model output: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	results := make([]Product, 0, MaxResults)
	for _, p := range payload.Products {
		if p.Name == "" || p.Price < 0 {
			continue
		}
		brand := p.Brand
		if brand == "" {
			brand = "Unknown Brand"
		}
		results = append(results, Product{
			ID:          newProductID(),
			Name:        p.Name,
			Price:       p.Price,
			Currency:    "INR",
			Description: p.Description,
			Brand:       brand,
			Merchant:    o.merchant,
		})
	}

	// Ascending order is requested from the model but never trusted.
	sort.Slice(results, func(i, j int) bool { return results[i].Price < results[j].Price })
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results, nil
}
