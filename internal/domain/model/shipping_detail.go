package model

// ShippingDetail is created together with its order and never touched
// independently. Exactly one per order.
type ShippingDetail struct {
	ReceiverName           string `json:"receiverName"`
	PhoneNumber            string `json:"phoneNumber"`
	GoogleMapAddressString string `json:"googleMapAddressString"`
	Note                   string `json:"note"`
}
