package orders

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	h := NewHandler()

	r.GET("/orders", h.MyOrders)
}
