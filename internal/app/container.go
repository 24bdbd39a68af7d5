package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roomdesk/room-booking-backend/internal/api"
	"github.com/roomdesk/room-booking-backend/internal/auth"
	"github.com/roomdesk/room-booking-backend/internal/booking"
	"github.com/roomdesk/room-booking-backend/internal/capacity"
	"github.com/roomdesk/room-booking-backend/internal/feature"
	"github.com/roomdesk/room-booking-backend/internal/pkg/storage"
	"github.com/roomdesk/room-booking-backend/internal/room"
	"github.com/roomdesk/room-booking-backend/internal/ticket"
	"github.com/roomdesk/room-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	UploadDir    string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	imageStorage, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init image storage: %w", err)
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo)

	// Capacity Module
	capacityRepo := capacity.NewPgxRepository(cfg.DBPool)
	capacityService := capacity.NewService(capacityRepo)

	// Feature Module
	featureRepo := feature.NewPgxRepository(cfg.DBPool)
	featureService := feature.NewService(featureRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, roomService)

	// Ticket Module
	ticketRepo := ticket.NewPgxRepository(cfg.DBPool)
	ticketService := ticket.NewService(ticketRepo)

	// API Router Config
	routerParams := api.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		UploadDir:    cfg.UploadDir,

		UserService:     userService,
		RoomService:     roomService,
		CapacityService: capacityService,
		FeatureService:  featureService,
		BookingService:  bookingService,
		TicketService:   ticketService,

		Storage:    imageStorage,
		JWTManager: jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
