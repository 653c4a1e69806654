package payment

// Intent is a gateway-assigned payment order awaiting completion by the
// customer on the gateway's checkout.
type Intent struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // smallest currency unit (paise for INR)
	Currency string `json:"currency"`
}

// Driver is the interface that all payment gateway drivers must implement
type Driver interface {
	// CreateIntent asks the gateway to mint a payment order for the given
	// amount in the smallest currency unit.
	CreateIntent(amount int64, currency string, receipt string) (*Intent, error)

	// VerifySignature reports whether signature was produced by the gateway
	// for the given order/payment pair.
	VerifySignature(orderID, paymentID, signature string) bool
}
