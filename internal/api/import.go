package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casabook/server/internal/models"
	"casabook/server/internal/queue"
	"casabook/server/internal/validation"
)

// ImportProperties accepts an array of property payloads, validates each
// one and enqueues them for the batch importer. The first invalid entry
// rejects the whole request so partial imports never happen silently.
func (h *Handler) ImportProperties(c *gin.Context) {
	if h.importQueue == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Import pipeline is not enabled"})
		return
	}

	var inputs []models.PropertyInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(inputs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No properties to import"})
		return
	}

	listings := make([]*models.Property, 0, len(inputs))
	for i := range inputs {
		if err := validation.ValidateProperty(&inputs[i]); err != nil {
			h.respondError(c, err)
			return
		}
		listings = append(listings, &models.Property{
			Title:         inputs[i].Title,
			Description:   inputs[i].Description,
			Address:       inputs[i].Address,
			PricePerNight: *inputs[i].PricePerNight,
			Bedrooms:      inputs[i].Bedrooms,
			Bathrooms:     inputs[i].Bathrooms,
			MaxGuests:     inputs[i].MaxGuests,
			Amenities:     inputs[i].Amenities,
			ImageURL:      inputs[i].ImageURL,
		})
	}

	queued := 0
	for _, listing := range listings {
		if err := h.importQueue.Push(listing); err != nil {
			if err == queue.ErrQueueFull {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"error":  "Import queue is full",
					"queued": queued,
				})
				return
			}
			h.logger.WithError(err).Error("Failed to enqueue listing")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		queued++
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status": "accepted",
		"queued": queued,
	})
}
