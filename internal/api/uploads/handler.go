package uploads

import (
	"mime/multipart"
	"net/http"

	"skyzone-backend/internal/services"
	"skyzone-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type UploadResponse struct {
	UploadID string            `json:"uploadId"`
	Files    map[string]string `json:"files"`
}

// UploadArtwork stages the customer's card artwork before checkout.
// Multipart fields: front (required), back and pdf (optional). Files are
// written under a fresh staging directory; checkout later references them.
func (h *Handler) UploadArtwork(c *gin.Context) {
	front, err := c.FormFile("front")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Front image is required"))
		return
	}

	fields := map[string]*multipart.FileHeader{"front": front}
	if back, err := c.FormFile("back"); err == nil {
		fields["back"] = back
	}
	if pdf, err := c.FormFile("pdf"); err == nil {
		fields["pdf"] = pdf
	}

	for field, fh := range fields {
		if !services.AllowedUploadExt(fh.Filename) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest,
				"Unsupported file type for "+field+": only jpg, jpeg, png and pdf are accepted"))
			return
		}
	}

	stagingID := services.NewStagingID()
	saved := make(map[string]string, len(fields))

	for field, fh := range fields {
		src, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to read uploaded file"))
			return
		}

		relPath, err := services.SaveStagedFile(stagingID, fh.Filename, src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to store uploaded file"))
			return
		}
		saved[field] = relPath
	}

	c.JSON(http.StatusOK, UploadResponse{
		UploadID: stagingID,
		Files:    saved,
	})
}
