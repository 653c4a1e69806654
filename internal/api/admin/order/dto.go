package order

import "time"

type PaymentSummary struct {
	ID        uint   `json:"id"`
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

type OrderListItem struct {
	ID              uint            `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerAddress string          `json:"customerAddress"`
	CardName        string          `json:"cardName"`
	Quantity        int             `json:"quantity"`
	TotalPrice      float64         `json:"totalPrice"`
	Status          string          `json:"status"`
	FrontImage      string          `json:"frontImage"`
	BackImage       string          `json:"backImage"`
	PDFDocument     string          `json:"pdfDocument"`
	CreatedAt       time.Time       `json:"createdAt"`
	Payment         *PaymentSummary `json:"payment"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
