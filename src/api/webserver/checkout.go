package webserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agentic-commerce/ap2-sim/src/agents/credentials"
	"github.com/agentic-commerce/ap2-sim/src/agents/shopping"
	"github.com/agentic-commerce/ap2-sim/src/catalog"
)

type Checkout struct {
	shopper *shopping.Agent
	creds   *credentials.Agent
}

func NewCheckout(shopper *shopping.Agent, creds *credentials.Agent) Checkout {
	return Checkout{shopper: shopper, creds: creds}
}

// sessionID maps a request to a shopping session. The stock front end sends
// no header and lands on the shared default session; callers that want
// isolation pass X-Session-ID.
func sessionID(c *gin.Context) string {
	return c.GetHeader("X-Session-ID")
}

func (h Checkout) Intent(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	// 200 even with a null product; the front end checks nullity itself.
	res := h.shopper.SubmitIntent(c.Request.Context(), sessionID(c), req.Prompt)
	c.JSON(http.StatusOK, res)
}

func (h Checkout) UpdateProduct(c *gin.Context) {
	var req struct {
		ProductID   string  `json:"product_id" binding:"required"`
		Name        string  `json:"name" binding:"required"`
		Price       float64 `json:"price"`
		Currency    string  `json:"currency"`
		Description string  `json:"description"`
		Brand       string  `json:"brand"`
		Merchant    string  `json:"merchant"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	if req.Currency == "" {
		req.Currency = "INR"
	}
	if req.Merchant == "" {
		req.Merchant = "CoffeeRoasters"
	}

	product := catalog.Product{
		ID:          req.ProductID,
		Name:        req.Name,
		Price:       req.Price,
		Currency:    req.Currency,
		Description: req.Description,
		Brand:       req.Brand,
		Merchant:    req.Merchant,
	}
	if err := h.shopper.SelectProduct(c.Request.Context(), sessionID(c), product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Cart updated to %s at %s", req.Name, strconv.FormatFloat(req.Price, 'f', -1, 64)),
	})
}

func (h Checkout) Pay(c *gin.Context) {
	var req struct {
		PaymentMethod string `json:"paymentMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	res := h.shopper.SubmitPayment(c.Request.Context(), sessionID(c), req.PaymentMethod)
	c.JSON(http.StatusOK, res)
}

func (h Checkout) PaymentMethods(c *gin.Context) {
	user := c.Query("user")
	if user == "" {
		user = "demo"
	}
	c.JSON(http.StatusOK, gin.H{"methods": h.creds.PaymentMethods(user)})
}
