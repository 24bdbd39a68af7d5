package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/roomdesk/room-booking-backend/internal/auth"
	"github.com/roomdesk/room-booking-backend/internal/booking"
	bookingHttp "github.com/roomdesk/room-booking-backend/internal/booking/http"
	"github.com/roomdesk/room-booking-backend/internal/capacity"
	capacityHttp "github.com/roomdesk/room-booking-backend/internal/capacity/http"
	"github.com/roomdesk/room-booking-backend/internal/feature"
	featureHttp "github.com/roomdesk/room-booking-backend/internal/feature/http"
	"github.com/roomdesk/room-booking-backend/internal/pkg/storage"
	"github.com/roomdesk/room-booking-backend/internal/room"
	roomHttp "github.com/roomdesk/room-booking-backend/internal/room/http"
	"github.com/roomdesk/room-booking-backend/internal/ticket"
	ticketHttp "github.com/roomdesk/room-booking-backend/internal/ticket/http"
	"github.com/roomdesk/room-booking-backend/internal/user"
	userHttp "github.com/roomdesk/room-booking-backend/internal/user/http"
)

// Config holds everything the router needs to assemble the API surface.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	UploadDir    string

	UserService     user.Service
	RoomService     room.Service
	CapacityService capacity.Service
	FeatureService  feature.Service
	BookingService  booking.Service
	TicketService   ticket.Service

	Storage    storage.Storage
	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Frontend dev server
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks if the authenticated actor is an admin.
	adminMiddleware := auth.AdminRequired()

	// Serve uploaded room images as static files.
	r.Static("/uploads", cfg.UploadDir)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	roomHandler := roomHttp.NewHandler(cfg.RoomService, cfg.Storage)
	capacityHandler := capacityHttp.NewHandler(cfg.CapacityService)
	featureHandler := featureHttp.NewHandler(cfg.FeatureService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	ticketHandler := ticketHttp.NewHandler(cfg.TicketService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		userHttp.RegisterAdminRoutes(v1, userHandler, authMiddleware, adminMiddleware)

		roomHttp.RegisterRoutes(v1, roomHandler)
		roomHttp.RegisterAdminRoutes(v1, roomHandler, authMiddleware, adminMiddleware)

		capacityHttp.RegisterRoutes(v1, capacityHandler, authMiddleware, adminMiddleware)
		featureHttp.RegisterRoutes(v1, featureHandler, authMiddleware, adminMiddleware)

		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		bookingHttp.RegisterAdminRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)

		ticketHttp.RegisterRoutes(v1, ticketHandler, authMiddleware)
		ticketHttp.RegisterAdminRoutes(v1, ticketHandler, authMiddleware, adminMiddleware)
	}

	return r
}
