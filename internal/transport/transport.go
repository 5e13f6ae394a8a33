package transport

import (
	"time"

	"event-booking/internal/auth"
	"event-booking/internal/transport/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InitRoutes builds the route table. Paths mirror the pages the original
// application served; every response is JSON.
func InitRoutes(
	catalogHandler *CatalogHandler,
	bookingHandler *BookingHandler,
	adminHandler *AdminHandler,
	authenticator *auth.Authenticator,
	requestTimeout time.Duration,
) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.Timeout(requestTimeout))
	router.Use(middleware.Session(authenticator))

	// Public catalog and booking
	router.GET("/", catalogHandler.Home)
	router.GET("/all-events", catalogHandler.AllEvents)
	router.GET("/book/:id", catalogHandler.BookEventPage)
	router.POST("/book-ticket", bookingHandler.BookTicket)

	// Admin session lifecycle
	router.GET("/admin", adminHandler.LoginState)
	router.POST("/admin", adminHandler.Login)
	router.GET("/logout", adminHandler.Logout)

	// Catalog curation, admin-gated
	curation := router.Group("/", middleware.RequireAdmin())
	{
		curation.GET("/admin/dashboard", adminHandler.Dashboard)
		curation.GET("/add-event", adminHandler.AddEventForm)
		curation.POST("/add-event", adminHandler.AddEvent)
		curation.GET("/update-event/:id", adminHandler.UpdateEventForm)
		curation.POST("/update-event/:id", adminHandler.UpdateEvent)
		curation.GET("/delete-event/:id", adminHandler.DeleteEvent)
		curation.GET("/admin/bookings", bookingHandler.ListBookings)
		curation.GET("/admin/events/:id/bookings", bookingHandler.ListEventBookings)
	}

	// Operational endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
