package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		properties := api.Group("/properties")
		{
			properties.POST("", handler.CreateProperty)
			properties.GET("", handler.GetAllProperties)
			properties.POST("/import", handler.ImportProperties)
			properties.GET("/:id", handler.GetPropertyByID)
			properties.GET("/:id/reservations", handler.GetPropertyWithReservations)
			properties.PUT("/:id", handler.UpdateProperty)
			properties.DELETE("/:id", handler.DeleteProperty)
		}

		reservations := api.Group("/reservations")
		{
			reservations.POST("", handler.CreateReservation)
			reservations.GET("", handler.GetAllReservations)
			reservations.GET("/property/:property_id", handler.GetReservationsByProperty)
			reservations.GET("/:id", handler.GetReservationByID)
			reservations.PUT("/:id", handler.UpdateReservation)
			reservations.DELETE("/:id", handler.DeleteReservation)
		}
	}
}
