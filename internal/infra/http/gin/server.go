package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"hotelfront/internal/infra/config"
	"hotelfront/internal/infra/obs"
)

type SessionHTTP interface {
	CreateBooking(c *gin.Context)
	CreateModification(c *gin.Context)
	CreateAdminEdit(c *gin.Context)
	Get(c *gin.Context)
	Calendar(c *gin.Context)
	ClickDate(c *gin.Context)
	SetGuests(c *gin.Context)
	SetRoom(c *gin.Context)
	Confirm(c *gin.Context)
	Delete(c *gin.Context)
}

type CatalogHTTP interface {
	RoomTypes(c *gin.Context)
	RoomType(c *gin.Context)
	Rooms(c *gin.Context)
}

type ReservationsHTTP interface {
	ByUser(c *gin.Context)
	All(c *gin.Context)
	Cancel(c *gin.Context)
	CheckIn(c *gin.Context)
	CheckOut(c *gin.Context)
	Transaction(c *gin.Context)
}

type PaymentsHTTP interface {
	Methods(c *gin.Context)
	Attach(c *gin.Context)
}

type Handlers struct {
	Sessions     SessionHTTP
	Catalog      CatalogHTTP
	Reservations ReservationsHTTP
	Payments     PaymentsHTTP
	Metrics      *obs.Metrics
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.RequestLogger())
	if h.Metrics != nil {
		router.Use(h.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Sessions != nil {
		api.POST("/booking-sessions", h.Sessions.CreateBooking)
		api.POST("/modification-sessions", h.Sessions.CreateModification)
		api.POST("/admin/edit-sessions", h.Sessions.CreateAdminEdit)

		sessions := api.Group("/sessions/:id")
		sessions.GET("", h.Sessions.Get)
		sessions.GET("/calendar", h.Sessions.Calendar)
		sessions.POST("/dates", h.Sessions.ClickDate)
		sessions.POST("/guests", h.Sessions.SetGuests)
		sessions.POST("/room", h.Sessions.SetRoom)
		sessions.POST("/confirm", h.Sessions.Confirm)
		sessions.DELETE("", h.Sessions.Delete)
	}
	if h.Catalog != nil {
		api.GET("/room-types", h.Catalog.RoomTypes)
		api.GET("/room-types/:id", h.Catalog.RoomType)
		api.GET("/rooms", h.Catalog.Rooms)
	}
	if h.Reservations != nil {
		api.GET("/users/:id/reservations", h.Reservations.ByUser)
		api.GET("/reservations", h.Reservations.All)
		api.POST("/reservations/:id/cancel", h.Reservations.Cancel)
		api.POST("/reservations/:id/check-in", h.Reservations.CheckIn)
		api.POST("/reservations/:id/check-out", h.Reservations.CheckOut)
		api.GET("/reservations/:id/transaction", h.Reservations.Transaction)
	}
	if h.Payments != nil {
		api.GET("/users/:id/payment-methods", h.Payments.Methods)
		api.POST("/users/:id/payment-methods", h.Payments.Attach)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
