package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"wanderwith/internal/model"
	"wanderwith/internal/service"

	"github.com/gin-gonic/gin"
)

// DestinationHandler handles destination catalogue requests
type DestinationHandler struct {
	service service.DestinationService
}

// NewDestinationHandler creates a new DestinationHandler
func NewDestinationHandler(s service.DestinationService) *DestinationHandler {
	return &DestinationHandler{service: s}
}

func (h *DestinationHandler) ListDestinations(c *gin.Context) {
	filters := model.DestinationFilters{
		Type:   c.DefaultQuery("type", model.CategoryAll),
		Search: c.Query("search"),
	}

	destinations, err := h.service.ListDestinations(c.Request.Context(), filters)
	if err != nil {
		log.Printf("Error listing destinations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve destinations"})
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func (h *DestinationHandler) GetDestination(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid destination ID"})
		return
	}

	destination, err := h.service.GetDestination(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error getting destination %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve destination"})
		return
	}
	c.JSON(http.StatusOK, destination)
}

// RegisterDestinationRoutes registers destination routes
func (h *DestinationHandler) RegisterDestinationRoutes(rg *gin.RouterGroup) {
	rg.GET("/destinations", h.ListDestinations)
	rg.GET("/destination/:id", h.GetDestination)
}
