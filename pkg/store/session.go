package store

// DialogueContext is the active session state: a single "last referenced
// product" pointer. The retrieval pipeline sets it on a successful match; the
// router reads it to disambiguate follow-ups ("add it", "that one"). It is
// cleared only by an explicit session reset.
type DialogueContext struct {
	SessionID             string `json:"session_id"`
	UserEmail             string `json:"user_email"`
	LastReferencedProduct *uint  `json:"last_referenced_product_id"`
}
