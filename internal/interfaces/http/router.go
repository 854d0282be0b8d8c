package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gleikstore/gleikstore-api/internal/application/auth"
	"github.com/gleikstore/gleikstore-api/internal/application/usecase"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/infrastructure/storage"
)

// bodyMargin margen sobre el máximo por archivo para los demás campos del multipart.
const bodyMargin = 1 << 20

// AppConfig parámetros del servidor Fiber.
type AppConfig struct {
	Name           string
	FrontendURL    string
	MaxUploadBytes int64
}

// NewApp construye la aplicación Fiber con el manejador de errores JSON y los middlewares globales:
// recover, request id, log de peticiones, métricas y CORS.
func NewApp(cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ErrorHandler: ErrorHandler,
		BodyLimit:    int(cfg.MaxUploadBytes) + bodyMargin,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger())
	app.Use(Metrics())
	if cfg.FrontendURL != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.FrontendURL,
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowCredentials: cfg.FrontendURL != "*",
		}))
	}
	return app
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	DeviceUC   *usecase.DeviceUseCase
	WarrantyUC *usecase.WarrantyUseCase
	UploadUC   *usecase.UploadUseCase
	CatalogUC  *usecase.CatalogUseCase
	JWTSecret  string

	UploadDir      string
	MaxUploadBytes int64
	// AuthRateLimit peticiones por minuto e IP en /api/auth/{register,login}; 0 desactiva.
	AuthRateLimit int
	// ServeUploads sirve UploadDir en /uploads (almacenamiento local).
	ServeUploads bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	if deps.ServeUploads {
		app.Static(storage.PublicPrefix, deps.UploadDir)
	}

	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})

	requireAuth := AuthMiddleware(deps.JWTSecret, deps.UserUC)
	requireAdmin := RequireRole(entity.RoleAdmin, deps.UserUC)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	throttle := authThrottle(deps.AuthRateLimit)
	authGroup.Post("/register", throttle, authHandler.Register)
	authGroup.Post("/login", throttle, authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// User (protegido)
	userHandler := NewUserHandler(deps.UserUC)
	api.Get("/user", requireAuth, userHandler.Get)
	api.Put("/user", requireAuth, userHandler.Update)

	// Device: la consulta de garantía es pública, el resto protegido
	devices := api.Group("/device")
	deviceHandler := NewDeviceHandler(deps.DeviceUC, deps.WarrantyUC)
	devices.Get("/warranty/:imei", deviceHandler.Warranty)
	devices.Get("/warranty/:imei/certificate", deviceHandler.Certificate)
	devices.Get("/", requireAuth, deviceHandler.List)
	devices.Post("/", requireAuth, deviceHandler.Create)
	devices.Get("/:id", requireAuth, deviceHandler.Get)
	devices.Put("/:id", requireAuth, deviceHandler.Update)
	devices.Delete("/:id", requireAuth, deviceHandler.Delete)

	// Upload (protegido)
	uploads := api.Group("/upload")
	uploadHandler := NewUploadHandler(deps.UploadUC, deps.UploadDir)
	uploads.Post("/profile-photo", requireAuth, UploadGuard("photo", deps.MaxUploadBytes, false), uploadHandler.ProfilePhoto)
	uploads.Post("/document", requireAuth, UploadGuard("document", deps.MaxUploadBytes, false), uploadHandler.Document)
	uploads.Post("/contract", requireAuth, UploadGuard("contract", deps.MaxUploadBytes, true), uploadHandler.Contract)
	uploads.Get("/documents", requireAuth, uploadHandler.List)

	// Catálogo (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/catalog", catalogHandler.List)

	// Admin (JWT + rol ADMIN leído de la DB)
	admin := api.Group("/admin", requireAuth, requireAdmin)
	adminHandler := NewAdminHandler(deps.WarrantyUC, deps.CatalogUC)
	admin.Get("/warranty/:imei", adminHandler.GetWarranty)
	admin.Post("/warranty", adminHandler.UpsertWarranty)
	admin.Get("/devices/:imei", adminHandler.GetDevice)
	admin.Post("/devices", adminHandler.UpdateDevice)
	admin.Post("/catalog", adminHandler.SaveProduct)
}

// authThrottle limita intentos de login/registro por IP.
func authThrottle(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return errorJSON(c, fiber.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Muitas tentativas. Aguarde um momento.")
		},
	})
}
