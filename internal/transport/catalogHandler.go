package transport

import (
	"errors"
	"net/http"

	"event-booking/internal/entity"
	"event-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Home serves the landing payload: upcoming events, the full list and the
// category grouping.
func (h *CatalogHandler) Home(c *gin.Context) {
	page, err := h.catalogService.GetHome(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// AllEvents serves the filtered list. Both query params are optional.
func (h *CatalogHandler) AllEvents(c *gin.Context) {
	events, err := h.catalogService.ListEvents(
		c.Request.Context(),
		c.Query("search"),
		c.Query("category"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// BookEventPage serves the data backing a booking form for one event.
func (h *CatalogHandler) BookEventPage(c *gin.Context) {
	event, err := h.catalogService.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entity.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}
