package router

import "strings"

// Keyword tables for the rule-based fallback path. Matching is substring
// based on the lowercased message, same as the chat behavior users already
// know, quirks included.
var (
	greetingKeywords = []string{
		"hi", "hello", "hey", "good morning", "good evening",
		"hai", "namaste", "vanakkam", "good afternoon",
	}

	negotiationKeywords = []string{
		"discount", "offer", "cheap", "less", "reduce", "price",
		"negotiate", "nego", "bargain", "deal", "taggesthava",
	}

	addToCartKeywords = []string{
		"add to cart", "add it", "add this", "buy it", "i'll take it",
		"take it", "add that",
	}

	stockKeywords = []string{
		"in stock", "stock", "available", "availability",
	}

	dealsKeywords = []string{
		"deals", "offers", "discounts", "on sale",
	}

	cartViewKeywords = []string{
		"my cart", "view cart", "show cart", "cart",
	}

	helpKeywords = []string{
		"help", "what can you do", "how do you work",
	}

	walkAwayPhrases = []string{
		"no thanks", "not interested", "leave it", "forget it",
		"never mind", "no deal",
	}
)

func matchesAny(message string, keywords []string) bool {
	lower := strings.ToLower(message)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isGreeting(message string) bool    { return matchesAny(message, greetingKeywords) }
func isNegotiation(message string) bool { return matchesAny(message, negotiationKeywords) }
func isAddToCart(message string) bool   { return matchesAny(message, addToCartKeywords) }
func isStockQuery(message string) bool  { return matchesAny(message, stockKeywords) }
func isDealsQuery(message string) bool  { return matchesAny(message, dealsKeywords) }
func isCartView(message string) bool    { return matchesAny(message, cartViewKeywords) }
func isHelp(message string) bool        { return matchesAny(message, helpKeywords) }
func isWalkAway(message string) bool    { return matchesAny(message, walkAwayPhrases) }

// isShortQuery marks messages terse enough that retrieval benefits from the
// context product's name being prefixed ("warranty?" about a laptop).
func isShortQuery(message string) bool {
	return len(strings.Fields(message)) <= 2
}
