package dto

type ThresholdsResponse struct {
	HighStockThreshold int     `json:"high_stock_threshold"`
	LowStockThreshold  int     `json:"low_stock_threshold"`
	HighDiscountRate   float64 `json:"high_discount_rate"`
	MediumDiscountRate float64 `json:"medium_discount_rate"`
	LowDiscountRate    float64 `json:"low_discount_rate"`
	DefaultMinPricePct float64 `json:"default_min_price_pct"`
}

type UpdateThresholdsRequest struct {
	HighStockThreshold int     `json:"high_stock_threshold" validate:"required,gt=0"`
	LowStockThreshold  int     `json:"low_stock_threshold" validate:"required,gte=0"`
	HighDiscountRate   float64 `json:"high_discount_rate" validate:"gte=0,lt=1"`
	MediumDiscountRate float64 `json:"medium_discount_rate" validate:"gte=0,lt=1"`
	LowDiscountRate    float64 `json:"low_discount_rate" validate:"gte=0,lt=1"`
	DefaultMinPricePct float64 `json:"default_min_price_pct" validate:"required,gt=0,lte=1"`
}

type ReindexResponse struct {
	Indexed int   `json:"indexed"`
	Failed  int   `json:"failed"`
	Total   int64 `json:"total"`
}
