package model

// OrderItem is immutable once created. Price is what was actually charged and
// may differ from the catalog display price.
type OrderItem struct {
	ProductDetailID string        `json:"productDetailId"`
	Quantity        int64         `json:"quantity"`
	Price           int64         `json:"price"`
	ProductDetail   ProductDetail `json:"productDetail"`
}
