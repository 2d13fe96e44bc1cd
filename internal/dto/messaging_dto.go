package dto

// PublishEmbedProductMessage asks the consumer to (re)build the vector index
// record for one product.
type PublishEmbedProductMessage struct {
	ProductId uint `json:"product_id"`
}
