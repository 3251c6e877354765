package routes

import (
	"net/http"
	"time"

	"barberbook/handlers"
	"barberbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups the handlers wired by the process entry point.
type HandlerBundle struct {
	Catalog      *handlers.CatalogHandler
	Appointments *handlers.AppointmentHandler
	Availability *handlers.AvailabilityHandler
	Blocked      *handlers.BlockedSlotHandler
	Customers    *handlers.CustomerHandler
	Auth         *handlers.AuthHandler
	Dashboard    *handlers.DashboardHandler

	// AuthSessions backs the admin middleware's session checks.
	AuthSessions *redis.Client
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterBookingRoutes registers the public booking-facing endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/available-slots", hb.Availability.GetAvailableSlots)
		api.POST("/appointments", hb.Appointments.CreateAppointment)
	}
}

// RegisterAdminRoutes registers endpoints for shop administration.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	api.POST("/auth/login", hb.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthAdminMiddleware(hb.AuthSessions))
	{
		protected.POST("/auth/logout", hb.Auth.Logout)

		protected.GET("/appointments", hb.Appointments.ListAppointments)
		protected.PATCH("/appointments/:id", hb.Appointments.UpdateAppointmentStatus)
		protected.DELETE("/appointments/:id", hb.Appointments.DeleteAppointment)

		protected.POST("/blocked-slots", hb.Blocked.CreateBlockedSlots)
		protected.GET("/blocked-slots", hb.Blocked.ListBlockedSlots)
		protected.DELETE("/blocked-slots/:id", hb.Blocked.DeleteBlockedSlot)

		protected.GET("/customers", hb.Customers.ListCustomers)
		protected.GET("/customers/:phone", hb.Customers.GetCustomerByPhone)
		protected.PUT("/customers/:id", hb.Customers.UpdateCustomer)
		protected.DELETE("/customers/:id", hb.Customers.DeleteCustomer)

		protected.GET("/dashboard/stats", hb.Dashboard.GetStats)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
