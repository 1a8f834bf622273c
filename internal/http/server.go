// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"jatriwheels/internal/http/handlers"
	"jatriwheels/internal/http/middleware"
	"jatriwheels/internal/modules/admin"
	"jatriwheels/internal/modules/booking"
	"jatriwheels/internal/modules/quote"
	"jatriwheels/internal/modules/rental"
	"jatriwheels/internal/modules/testimonial"
	"jatriwheels/internal/modules/user"
	"jatriwheels/internal/modules/vehicle"
)

type ServerDeps struct {
	Quote        *quote.Service
	Booking      *booking.Service
	Rental       *rental.Service
	Vehicle      *vehicle.Service
	User         *user.Service
	Admin        *admin.Service
	Stats        *admin.StatsService
	Testimonials *testimonial.Store
	// WhatsAppNumber is the business line booking handoffs target.
	WhatsAppNumber string
	Logger         *zap.Logger
}

// indianPhone accepts ten digits with an optional +91 prefix, the
// formats the booking form collects.
var indianPhone = regexp.MustCompile(`^(\+91)?[6-9][0-9]{9}$`)

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
			return indianPhone.MatchString(fl.Field().String())
		})
	}
}

// NewRouter wires every endpoint. Public routes serve the booking
// site; the /api/admin group sits behind session auth.
func NewRouter(deps ServerDeps) http.Handler {
	registerValidations()
	r := gin.New()
	r.Use(middleware.Recovery(deps.Logger), middleware.Logging(deps.Logger))

	quoteHandler := handlers.NewQuoteHandler(deps.Quote, deps.Vehicle)
	bookingHandler := handlers.NewBookingHandler(deps.Booking, deps.WhatsAppNumber)
	rentalHandler := handlers.NewRentalHandler(deps.Rental)
	vehicleHandler := handlers.NewVehicleHandler(deps.Vehicle)
	userHandler := handlers.NewUserHandler(deps.User)
	adminHandler := handlers.NewAdminHandler(deps.Admin, deps.Stats)
	testimonialHandler := handlers.NewTestimonialHandler(deps.Testimonials)

	api := r.Group("/api")
	api.POST("/quotes", quoteHandler.Create)
	api.POST("/bookings", bookingHandler.Create)
	api.GET("/bookings/track/:orderNumber", bookingHandler.Track)
	api.POST("/rentals", rentalHandler.Create)
	api.GET("/vehicles", vehicleHandler.ListPublic)
	api.GET("/testimonials", testimonialHandler.List)

	api.POST("/admin/login", adminHandler.Login)
	api.POST("/admin/logout", adminHandler.Logout)

	authed := api.Group("/admin", middleware.Auth(deps.Admin))
	authed.GET("/stats", adminHandler.Stats)

	authed.GET("/bookings", bookingHandler.List)
	authed.GET("/bookings/:id", bookingHandler.Get)
	authed.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
	authed.PATCH("/bookings/:id/payment", bookingHandler.UpdatePayment)
	authed.DELETE("/bookings/:id", bookingHandler.Delete)

	authed.GET("/rentals", rentalHandler.List)
	authed.GET("/rentals/:id", rentalHandler.Get)
	authed.PATCH("/rentals/:id/status", rentalHandler.UpdateStatus)
	authed.PATCH("/rentals/:id/payment", rentalHandler.UpdatePayment)

	authed.GET("/users", userHandler.List)
	authed.GET("/users/:id/rides", userHandler.RideHistory)

	authed.GET("/vehicles", vehicleHandler.ListAll)
	authed.POST("/vehicles", vehicleHandler.Create)
	authed.PUT("/vehicles/:id", vehicleHandler.Update)
	authed.DELETE("/vehicles/:id", vehicleHandler.Delete)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
