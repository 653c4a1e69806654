package download

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	h := NewHandler()

	r.GET("/download", h.DownloadFile)
}
