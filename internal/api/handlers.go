package api

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"casabook/server/internal/apperrors"
	"casabook/server/internal/models"
	"casabook/server/internal/queue"
	"casabook/server/internal/service"
)

type Handler struct {
	properties   *service.PropertyService
	reservations *service.ReservationService
	importQueue  *queue.ListingQueue
	environment  string
	logger       *logrus.Logger
}

func NewHandler(properties *service.PropertyService, reservations *service.ReservationService, importQueue *queue.ListingQueue, environment string, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		properties:   properties,
		reservations: reservations,
		importQueue:  importQueue,
		environment:  environment,
		logger:       logger,
	}
}

// respondError maps the error taxonomy onto status codes. Storage detail
// never leaves the server in production.
func (h *Handler) respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var notFoundErr *apperrors.NotFoundError
	var databaseErr *apperrors.DatabaseError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &databaseErr):
		h.logger.WithError(databaseErr.Unwrap()).Error("Storage failure")
		body := gin.H{"error": "Internal server error"}
		if h.environment != "production" && databaseErr.Unwrap() != nil {
			body["detail"] = databaseErr.Unwrap().Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	default:
		h.logger.WithError(err).Error("Unexpected failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var input models.PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	property, err := h.properties.Create(&input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, property)
}

func (h *Handler) GetAllProperties(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	properties, err := h.properties.GetAll(page, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if properties == nil {
		properties = []models.Property{}
	}

	c.JSON(http.StatusOK, properties)
}

func (h *Handler) GetPropertyByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	property, err := h.properties.GetByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *Handler) GetPropertyWithReservations(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	property, err := h.properties.GetWithReservations(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input models.PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	property, err := h.properties.Update(id, &input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.properties.Delete(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var input models.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reservation, err := h.reservations.Create(&input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

func (h *Handler) GetAllReservations(c *gin.Context) {
	reservations, err := h.reservations.GetAll()
	if err != nil {
		h.respondError(c, err)
		return
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}

	c.JSON(http.StatusOK, reservations)
}

func (h *Handler) GetReservationByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	reservation, err := h.reservations.GetByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if reservation == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Reservation not found"})
		return
	}

	c.JSON(http.StatusOK, reservation)
}

func (h *Handler) GetReservationsByProperty(c *gin.Context) {
	propertyID, ok := parseID(c, "property_id")
	if !ok {
		return
	}

	reservations, err := h.reservations.GetByPropertyID(propertyID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}

	c.JSON(http.StatusOK, reservations)
}

func (h *Handler) UpdateReservation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input models.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reservation, err := h.reservations.Update(id, &input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}

func (h *Handler) DeleteReservation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.reservations.Delete(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
