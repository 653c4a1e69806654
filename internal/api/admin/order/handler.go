package order

import (
	"errors"
	"net/http"
	"strconv"

	"skyzone-backend/internal/models"
	"skyzone-backend/internal/services"
	"skyzone-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListOrders returns every order with payment and card design joined,
// newest first, flattened for the dashboard.
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := services.FindAllOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
		return
	}

	items := make([]OrderListItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, toListItem(o))
	}

	c.JSON(http.StatusOK, gin.H{"orders": items})
}

// UpdateStatus sets an order's lifecycle status. Any non-empty value is
// accepted.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid order id"))
		return
	}

	var req UpdateStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updated, err := services.UpdateOrderStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Order not found"))
		case errors.Is(err, services.ErrStatusRequired):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Status is required"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"order":   toListItem(*updated),
	})
}

func toListItem(o models.Order) OrderListItem {
	item := OrderListItem{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		CardName:        o.CardDesign.Name,
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice,
		Status:          o.Status,
		FrontImage:      o.FrontImage,
		BackImage:       o.BackImage,
		PDFDocument:     o.PDFDocument,
		CreatedAt:       o.CreatedAt,
	}
	if o.Payment != nil {
		item.Payment = &PaymentSummary{
			ID:        o.Payment.ID,
			PaymentID: o.Payment.RazorpayPaymentID,
			Status:    o.Payment.Status,
		}
	}
	return item
}
