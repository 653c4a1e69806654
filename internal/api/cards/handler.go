package cards

import (
	"errors"
	"net/http"
	"strconv"

	"skyzone-backend/internal/services"
	"skyzone-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListCards returns the active catalog.
func (h *Handler) ListCards(c *gin.Context) {
	designs, err := services.FindActiveCardDesigns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch card designs"))
		return
	}

	items := make([]CardDesignResponse, 0, len(designs))
	for _, d := range designs {
		items = append(items, CardDesignResponse{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Price:       d.Price,
			ImageURL:    d.ImageURL,
			Category:    d.Category,
		})
	}

	c.JSON(http.StatusOK, gin.H{"cards": items})
}

// GetCard returns one design by id.
func (h *Handler) GetCard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid card id"))
		return
	}

	design, err := services.FindCardDesignByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCardDesignNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Card design not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch card design"))
		return
	}

	c.JSON(http.StatusOK, CardDesignResponse{
		ID:          design.ID,
		Name:        design.Name,
		Description: design.Description,
		Price:       design.Price,
		ImageURL:    design.ImageURL,
		Category:    design.Category,
	})
}
