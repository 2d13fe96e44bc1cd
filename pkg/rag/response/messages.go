package response

import (
	"fmt"
	"strings"
)

// Fixed bot replies. Kept as plain constants so tests can assert on them and
// translations stay in one place.
const (
	RetrievalFallbackMessage = "Sorry, I couldn't look that up right now. Please try again later."

	AskWhichProductMessage = "Which product would you like? Tell me the product name and I'll add it to your cart."

	EmptyCartMessage = "Your cart is empty."

	HelpMessage = "I can help you find products, check stock and deals, negotiate prices, and manage your cart. Try asking \"do you have laptops?\" or \"any discount on headphones?\""

	NoDealMessage = "No problem! My offer still stands if you change your mind."

	WhichProductToNegotiateMessage = "Which product are we talking about? Tell me the product name first and then we can talk price."

	NoDealsMessage = "No active deals right now, but ask me about any product and I'll see what I can do!"

	ProductNotFoundMessage = "Sorry, I couldn't find that product."
)

// Greeting addresses the user by the local part of their email.
func Greeting(userEmail string) string {
	username := userEmail
	if at := strings.Index(userEmail, "@"); at > 0 {
		username = userEmail[:at]
	}
	return fmt.Sprintf("Hey %s! 👋 How can I help you with our products today?", username)
}

// StockReply summarizes availability for one product.
func StockReply(name string, stock int) string {
	if stock <= 0 {
		return fmt.Sprintf("%s is currently out of stock.", name)
	}
	return fmt.Sprintf("%s: %d in stock.", name, stock)
}

// DealItem is one line of a deals listing.
func DealItem(name string, price float64, offerMessage string) string {
	return fmt.Sprintf("%s (₹%.2f): %s", name, price, offerMessage)
}

// CartLine is one line of a cart listing.
func CartLine(name string, price float64, quantity int) string {
	return fmt.Sprintf("%s - ₹%.2f x %d", name, price, quantity)
}

// AddedToCart confirms a cart add.
func AddedToCart(name string) string {
	return fmt.Sprintf("Added %s to your cart! 🛒", name)
}
