package payments

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	h := NewHandler()

	group := r.Group("/payments")
	{
		group.POST("/create-order", h.CreateOrder)
		group.POST("/verify", h.VerifyPayment)
	}
}
