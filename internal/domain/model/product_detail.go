package model

// ProductDetail is the snapshot of the product taken at order time. It is
// never refetched; the order is the permanent record of what was sold.
type ProductDetail struct {
	ProductName    string  `json:"productName"`
	FlavourName    string  `json:"flavourName"`
	WeightValue    float64 `json:"weightValue"`
	WeightUnit     string  `json:"weightUnit"`
	ImageURL       string  `json:"imageUrl"`
	ExpirationDate string  `json:"expirationDate"`
	DisplayPrice   int64   `json:"displayPrice"`
}
