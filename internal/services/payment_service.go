package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"skyzone-backend/config"
	"skyzone-backend/internal/database"
	"skyzone-backend/internal/models"
	"skyzone-backend/internal/payment"
	"skyzone-backend/internal/payment/razorpay"

	"gorm.io/datatypes"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidSignature = errors.New("invalid payment signature")
)

// Gateway returns the configured payment gateway driver. Declared as a
// variable so tests can point it at a stub server.
var Gateway = func() (payment.Driver, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return razorpay.NewRazorpayDriver(cfg.RazorpayKeyID, cfg.RazorpayKeySecret), nil
}

// CreatePaymentIntent mints a gateway payment order for the given amount.
// amount is in INR and is forwarded to the gateway in paise. Nothing is
// persisted locally; the order row is only written after verification.
func CreatePaymentIntent(amount float64, currency string) (*payment.Intent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if currency == "" {
		currency = "INR"
	}

	driver, err := Gateway()
	if err != nil {
		return nil, err
	}

	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
	// Round, don't truncate: 149.50*100 is 14949.999... in float64.
	return driver.CreateIntent(int64(math.Round(amount*100)), currency, receipt)
}

type CustomerDetails struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	OrderNotes string
}

// OrderFiles flags which artwork files the customer attached. The bytes are
// uploaded in a separate step before checkout; verification only records the
// expected paths.
type OrderFiles struct {
	BackImage   bool
	PDFDocument bool
}

type OrderData struct {
	CardID       uint
	CardName     string
	Quantity     int
	PricePerCard float64
	TotalPrice   float64
	Customer     CustomerDetails
	Files        OrderFiles
}

// GenerateOrderNumber derives a human-facing order number from the trailing
// digits of the current timestamp. It is a display identifier, not a
// uniqueness guarantee: two checkouts in the same millisecond collide.
func GenerateOrderNumber() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return "SKYZ-" + ms[len(ms)-6:]
}

// VerifyPaymentAndCreateOrder validates the gateway signature and, on
// success, materializes the user, card design, order and payment rows.
// A signature mismatch aborts before any write.
func VerifyPaymentAndCreateOrder(gatewayOrderID, gatewayPaymentID, signature string, data OrderData) (*models.Order, error) {
	driver, err := Gateway()
	if err != nil {
		return nil, err
	}

	if !driver.VerifySignature(gatewayOrderID, gatewayPaymentID, signature) {
		return nil, ErrInvalidSignature
	}

	orderNumber := GenerateOrderNumber()

	user, err := FindOrCreateUserByEmail(data.Customer.Email, data.Customer.Name, data.Customer.Phone, data.Customer.Address)
	if err != nil {
		return nil, err
	}

	design, err := FindOrCreateCardDesign(data.CardID, data.CardName, data.PricePerCard)
	if err != nil {
		return nil, err
	}

	if err := EnsureOrderDir(orderNumber); err != nil {
		return nil, err
	}

	// File paths are synthesized here; the bytes were written by the earlier
	// upload step. This is a two-phase seam, not a transactional guarantee.
	frontImage := orderNumber + "/front.jpg"
	var backImage, pdfDocument string
	if data.Files.BackImage {
		backImage = orderNumber + "/back.jpg"
	}
	if data.Files.PDFDocument {
		pdfDocument = orderNumber + "/document.pdf"
	}

	order := models.Order{
		OrderNumber:     orderNumber,
		UserID:          user.ID,
		CardDesignID:    design.ID,
		CustomerName:    data.Customer.Name,
		CustomerEmail:   data.Customer.Email,
		CustomerPhone:   data.Customer.Phone,
		CustomerAddress: data.Customer.Address,
		Quantity:        data.Quantity,
		PricePerCard:    data.PricePerCard,
		// Total is stored as supplied by the client, not recomputed.
		TotalPrice:  data.TotalPrice,
		Status:      models.OrderStatusPending,
		FrontImage:  frontImage,
		BackImage:   backImage,
		PDFDocument: pdfDocument,
		OrderNotes:  data.Customer.OrderNotes,
	}
	if err := database.DB.Create(&order).Error; err != nil {
		return nil, err
	}

	snapshot, _ := json.Marshal(map[string]string{
		"order_id":   gatewayOrderID,
		"payment_id": gatewayPaymentID,
		"signature":  signature,
	})

	// Written as a second insert. A crash between the two leaves an order
	// without a payment; volumes are low and reconciliation is manual.
	pay := models.Payment{
		OrderID:           order.ID,
		RazorpayOrderID:   gatewayOrderID,
		RazorpayPaymentID: gatewayPaymentID,
		RazorpaySignature: signature,
		Amount:            data.TotalPrice,
		Currency:          "INR",
		Status:            models.PaymentStatusCompleted,
		PaymentResponse:   datatypes.JSON(snapshot),
	}
	if err := database.DB.Create(&pay).Error; err != nil {
		return nil, err
	}

	order.Payment = &pay
	return &order, nil
}
