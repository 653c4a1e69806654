package orders

import (
	"net/http"

	"skyzone-backend/internal/models"
	"skyzone-backend/internal/services"
	"skyzone-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// MyOrders lists the authenticated customer's orders, newest first.
func (h *Handler) MyOrders(c *gin.Context) {
	val, exists := c.Get("user")
	user, ok := val.(models.User)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	orders, err := services.FindOrdersByUserID(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch orders"))
		return
	}

	items := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		item := OrderSummary{
			ID:           o.ID,
			OrderNumber:  o.OrderNumber,
			CardName:     o.CardDesign.Name,
			Quantity:     o.Quantity,
			PricePerCard: o.PricePerCard,
			TotalPrice:   o.TotalPrice,
			Status:       o.Status,
			CreatedAt:    o.CreatedAt,
		}
		if o.Payment != nil {
			item.PaymentStatus = o.Payment.Status
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{"orders": items})
}
