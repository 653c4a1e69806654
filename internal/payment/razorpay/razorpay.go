package razorpay

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"skyzone-backend/internal/payment"
	"skyzone-backend/internal/utils"
)

const defaultBaseURL = "https://api.razorpay.com"

type RazorpayDriver struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Client    *http.Client
}

func NewRazorpayDriver(keyID, keySecret string) *RazorpayDriver {
	return &RazorpayDriver{
		BaseURL:   defaultBaseURL,
		KeyID:     keyID,
		KeySecret: keySecret,
		Client:    utils.NewHTTPClient(30 * time.Second),
	}
}

type createOrderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture int    `json:"payment_capture"`
}

// CreateIntent creates a payment order via the Razorpay Orders API.
// amount is in the smallest currency unit (paise).
func (d *RazorpayDriver) CreateIntent(amount int64, currency string, receipt string) (*payment.Intent, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:         amount,
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: 1,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, d.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(d.KeyID, d.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var intent payment.Intent
	if err := json.Unmarshal(respBody, &intent); err != nil {
		return nil, err
	}
	if intent.ID == "" {
		return nil, fmt.Errorf("gateway response missing order id")
	}

	return &intent, nil
}

// VerifySignature recomputes the HMAC-SHA256 of "orderID|paymentID" with the
// key secret and compares it against the supplied signature in constant time.
func (d *RazorpayDriver) VerifySignature(orderID, paymentID, signature string) bool {
	h := hmac.New(sha256.New, []byte(d.KeySecret))
	fmt.Fprintf(h, "%s|%s", orderID, paymentID)
	expected := hex.EncodeToString(h.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
