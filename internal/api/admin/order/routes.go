package order

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	h := NewHandler()

	r.GET("/orders", h.ListOrders)
	r.PATCH("/orders/:id/status", h.UpdateStatus)
}
