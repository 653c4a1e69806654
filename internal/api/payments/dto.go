package payments

type CreateOrderRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
}

type CreateOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type CustomerDetailsPayload struct {
	CustomerName string `json:"customerName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	OrderNotes   string `json:"orderNotes"`
}

type OrderFilesPayload struct {
	BackImage   bool `json:"backImage"`
	PDFDocument bool `json:"pdfDocument"`
}

type OrderDataPayload struct {
	CardID          uint                   `json:"cardId"`
	CardName        string                 `json:"cardName"`
	Quantity        int                    `json:"quantity" binding:"required,gt=0"`
	PricePerCard    float64                `json:"pricePerCard"`
	TotalPrice      float64                `json:"totalPrice"`
	CustomerDetails CustomerDetailsPayload `json:"customerDetails" binding:"required"`
	Files           OrderFilesPayload      `json:"files"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string           `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string           `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string           `json:"razorpay_signature" binding:"required"`
	OrderData         OrderDataPayload `json:"orderData" binding:"required"`
}

type VerifyPaymentResponse struct {
	OrderID     uint   `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}
