package download

import (
	"errors"
	"net/http"
	"path"

	"skyzone-backend/internal/services"
	"skyzone-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// DownloadFile streams a stored upload by its relative path. Paths that
// resolve outside the upload root are answered the same as missing files.
func (h *Handler) DownloadFile(c *gin.Context) {
	relPath := c.Query("path")
	if relPath == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "File path is required"))
		return
	}

	f, info, err := services.OpenUpload(relPath)
	if err != nil {
		if errors.Is(err, services.ErrPathOutsideRoot) || errors.Is(err, services.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "File not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
		return
	}
	defer f.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": `attachment; filename="` + path.Base(relPath) + `"`,
	}

	c.DataFromReader(http.StatusOK, info.Size(), services.ContentTypeFor(relPath), f, extraHeaders)
}
