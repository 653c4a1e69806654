package payments

import (
	"errors"
	"net/http"

	"skyzone-backend/internal/services"
	"skyzone-backend/internal/utils"
	"skyzone-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// CreateOrder mints a payment order at the gateway for the requested amount.
// Nothing is persisted; the local order is only created after verification.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	intent, err := services.CreatePaymentIntent(req.Amount, req.Currency)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid amount"))
			return
		}
		if logger.Log != nil {
			logger.Log.Error("create payment order failed", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create payment order"))
		return
	}

	c.JSON(http.StatusOK, CreateOrderResponse{
		ID:       intent.ID,
		Amount:   intent.Amount,
		Currency: intent.Currency,
	})
}

// VerifyPayment checks the gateway signature and materializes the order.
func (h *Handler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	data := services.OrderData{
		CardID:       req.OrderData.CardID,
		CardName:     req.OrderData.CardName,
		Quantity:     req.OrderData.Quantity,
		PricePerCard: req.OrderData.PricePerCard,
		TotalPrice:   req.OrderData.TotalPrice,
		Customer: services.CustomerDetails{
			Name:       req.OrderData.CustomerDetails.CustomerName,
			Email:      req.OrderData.CustomerDetails.Email,
			Phone:      req.OrderData.CustomerDetails.Phone,
			Address:    req.OrderData.CustomerDetails.Address,
			OrderNotes: req.OrderData.CustomerDetails.OrderNotes,
		},
		Files: services.OrderFiles{
			BackImage:   req.OrderData.Files.BackImage,
			PDFDocument: req.OrderData.Files.PDFDocument,
		},
	}

	order, err := services.VerifyPaymentAndCreateOrder(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, data)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid payment signature"))
			return
		}
		if logger.Log != nil {
			logger.Log.Error("verify payment failed", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to verify payment"))
		return
	}

	c.JSON(http.StatusOK, VerifyPaymentResponse{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
	})
}
