// Interactive walk-through of the mandate flow: one intent, the cheapest
// candidate accepted, one payment. Uses the static catalog unless an
// OpenRouter key is configured.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/agentic-commerce/ap2-sim/src/agents/credentials"
	"github.com/agentic-commerce/ap2-sim/src/agents/merchant"
	"github.com/agentic-commerce/ap2-sim/src/agents/processor"
	"github.com/agentic-commerce/ap2-sim/src/agents/shopping"
	"github.com/agentic-commerce/ap2-sim/src/api/config"
	"github.com/agentic-commerce/ap2-sim/src/catalog"
)

func main() {
	cfg := config.Load()

	var searcher catalog.Searcher
	if cfg.OpenRouterKey != "" {
		searcher = catalog.NewOpenRouter(cfg.OpenRouterKey, cfg.Model, cfg.MerchantName)
	} else {
		searcher = catalog.NewStatic(cfg.MerchantName)
	}

	shopper := shopping.New(shopping.Config{
		Merchant:    merchant.New(cfg.MerchantName, searcher),
		Credentials: credentials.New(credentials.DefaultName),
		Processor:   processor.New(processor.DefaultName),
		Timeout:     time.Duration(cfg.SearchTimeout) * time.Second,
	})

	fmt.Println("Initializing AP2 Protocol Simulation...")
	fmt.Println("---------------------------------------")
	fmt.Println("\nEnter your shopping request (e.g., 'I want a gaming laptop'):")
	fmt.Print("> ")

	reader := bufio.NewReader(os.Stdin)
	prompt, _ := reader.ReadString('\n')
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		prompt = "I want to buy a coffee machine"
	}
	fmt.Printf("\nUser: %s\n\n", prompt)

	ctx := context.Background()
	intent := shopper.SubmitIntent(ctx, "cli", prompt)
	if intent.Product == nil {
		fmt.Println("\n--- Final Purchase Confirmation ---")
		fmt.Println("Status: FAILED")
		fmt.Println("Message: Product not found")
		fmt.Println("---------------------------------------")
		return
	}

	pay := shopper.SubmitPayment(ctx, "cli", "pm_1")
	receipt := "-"
	if pay.ReceiptID != nil {
		receipt = *pay.ReceiptID
	}

	fmt.Println("\n--- Final Purchase Confirmation ---")
	fmt.Printf("Status: %s\n", pay.Status)
	fmt.Printf("Transaction ID: %s\n", receipt)
	fmt.Printf("Amount Charged: %.2f %s\n", intent.Product.Price, intent.Product.Currency)
	fmt.Println("---------------------------------------")
}
