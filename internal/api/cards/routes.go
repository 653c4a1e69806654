package cards

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	h := NewHandler()

	group := r.Group("/cards")
	{
		group.GET("", h.ListCards)
		group.GET("/:id", h.GetCard)
	}
}
