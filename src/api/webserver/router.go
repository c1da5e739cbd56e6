// Package webserver exposes the mandate flow over HTTP for the demo front
// end. The route shapes are a compatibility contract: the front end checks
// product nullity on /intent, and declined payments come back as 200 with a
// FAILED status rather than an error code.
package webserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/agentic-commerce/ap2-sim/src/agents/credentials"
	"github.com/agentic-commerce/ap2-sim/src/agents/shopping"
)

func New(shopper *shopping.Agent, creds *credentials.Agent) *gin.Engine {
	r := gin.Default()

	// Demo parity with the original server: open CORS.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "X-Session-ID"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	h := NewCheckout(shopper, creds)
	r.POST("/intent", h.Intent)
	r.POST("/update-product", h.UpdateProduct)
	r.POST("/pay", h.Pay)
	r.GET("/payment-methods", h.PaymentMethods)

	return r
}
