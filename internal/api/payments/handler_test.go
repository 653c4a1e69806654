package payments_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"skyzone-backend/internal/api/payments"
	"skyzone-backend/internal/database"
	"skyzone-backend/internal/models"
	"skyzone-backend/internal/payment"
	"skyzone-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.Payment{}, &models.Order{}, &models.CardDesign{}, &models.User{})

	err = db.AutoMigrate(&models.User{}, &models.CardDesign{}, &models.Order{}, &models.Payment{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	payments.RegisterRoutes(api)
	return r
}

type stubDriver struct {
	intent *payment.Intent
}

func (s *stubDriver) CreateIntent(amount int64, currency, receipt string) (*payment.Intent, error) {
	return s.intent, nil
}

func (s *stubDriver) VerifySignature(orderID, paymentID, signature string) bool {
	return false
}

func TestCreateOrderValidation(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "Missing Amount",
			body:           `{"currency":"INR"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Zero Amount",
			body:           `{"amount":0,"currency":"INR"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Negative Amount",
			body:           `{"amount":-100,"currency":"INR"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Non-Numeric Amount",
			body:           `{"amount":"abc","currency":"INR"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{"amount":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodPost, "/api/payments/create-order", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	orig := services.Gateway
	defer func() { services.Gateway = orig }()

	services.Gateway = func() (payment.Driver, error) {
		return &stubDriver{intent: &payment.Intent{ID: "order_stub123", Amount: 199900, Currency: "INR"}}, nil
	}

	r := newTestRouter()

	req, _ := http.NewRequest(http.MethodPost, "/api/payments/create-order", bytes.NewBufferString(`{"amount":1999,"currency":"INR"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp payments.CreateOrderResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "order_stub123", resp.ID)
	assert.Equal(t, int64(199900), resp.Amount)
	assert.Equal(t, "INR", resp.Currency)
}

func signTuple(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(h, "%s|%s", orderID, paymentID)
	return hex.EncodeToString(h.Sum(nil))
}

func verifyBody(signature string) string {
	return fmt.Sprintf(`{
		"razorpay_order_id": "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature": %q,
		"orderData": {
			"cardId": 1,
			"cardName": "Student ID Card",
			"quantity": 10,
			"pricePerCard": 149,
			"totalPrice": 1490,
			"customerDetails": {
				"customerName": "Asha Rao",
				"email": "asha@example.com",
				"phone": "+91 90000 00001",
				"address": "12 MG Road, Bengaluru"
			},
			"files": {"backImage": true, "pdfDocument": false}
		}
	}`, signature)
}

func TestVerifyPayment(t *testing.T) {
	setupTestDB()
	os.Setenv("JWT_SECRET", "test_secret")
	os.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())

	r := newTestRouter()

	t.Run("Invalid Signature", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/api/payments/verify", bytes.NewBufferString(verifyBody("forged")))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid payment signature")

		var orderCount int64
		database.DB.Model(&models.Order{}).Count(&orderCount)
		assert.Zero(t, orderCount)
	})

	t.Run("Valid Signature", func(t *testing.T) {
		signature := signTuple("test_secret", "order_abc", "pay_xyz")
		req, _ := http.NewRequest(http.MethodPost, "/api/payments/verify", bytes.NewBufferString(verifyBody(signature)))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp payments.VerifyPaymentResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotZero(t, resp.OrderID)
		assert.Regexp(t, `^SKYZ-\d{6}$`, resp.OrderNumber)

		var orderCount, paymentCount int64
		database.DB.Model(&models.Order{}).Count(&orderCount)
		database.DB.Model(&models.Payment{}).Count(&paymentCount)
		assert.Equal(t, int64(1), orderCount)
		assert.Equal(t, int64(1), paymentCount)
	})

	t.Run("Missing Gateway Fields", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/api/payments/verify", bytes.NewBufferString(`{"orderData":{}}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
