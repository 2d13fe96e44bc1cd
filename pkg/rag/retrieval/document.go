package retrieval

import (
	"fmt"
	"strconv"
)

// Task types passed through to the embedding provider. Gemini distinguishes
// query and document embeddings; other providers ignore them.
const (
	TaskTypeQuery    = "RETRIEVAL_QUERY"
	TaskTypeDocument = "RETRIEVAL_DOCUMENT"
)

// BuildDocument produces the canonical text that gets embedded for a product.
// Index writers and the reindex job must agree on this shape, otherwise
// queries and documents live in different parts of the vector space.
func BuildDocument(name string, price float64, description string) string {
	return fmt.Sprintf("%s Price %s Description %s", name, FormatPrice(price), description)
}

// FormatAnswer renders the single-product answer shown to the user.
func FormatAnswer(name string, price float64, description string) string {
	return fmt.Sprintf("%s price ₹%s — %s", name, FormatPrice(price), description)
}

// FormatPrice prints a price without a trailing ".00" for whole amounts.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
