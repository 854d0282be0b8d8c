package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/gleikstore/gleikstore-api/docs"
	"github.com/gleikstore/gleikstore-api/internal/application/auth"
	"github.com/gleikstore/gleikstore-api/internal/application/usecase"
	infrapdf "github.com/gleikstore/gleikstore-api/internal/infrastructure/pdf"
	"github.com/gleikstore/gleikstore-api/internal/infrastructure/postgres"
	"github.com/gleikstore/gleikstore-api/internal/infrastructure/storage"
	httpRouter "github.com/gleikstore/gleikstore-api/internal/interfaces/http"
	"github.com/gleikstore/gleikstore-api/pkg/config"
	"github.com/gleikstore/gleikstore-api/pkg/logger"
	"github.com/gleikstore/gleikstore-api/pkg/metrics"
)

// @title        Gleikstore API
// @version      1.0
// @description  Portal del cliente: cuenta, aparelhos, garantías y documentos.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("timezone", cfg.App.Location().String()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}

	files, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de archivos")
	}
	log.Info().Str("backend", files.Backend()).Str("bucket", cfg.Storage.Bucket).Msg("almacenamiento listo")

	userRepo := postgres.NewUserRepository(pool)
	deviceRepo := postgres.NewDeviceRepository(pool)
	warrantyRepo := postgres.NewWarrantyRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	photoRepo := postgres.NewProfilePhotoRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Certificado PDF de garantía; el QR apunta a la consulta pública
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	warrantyUC := usecase.NewWarrantyUseCase(
		warrantyRepo, deviceRepo, txRunner, pdfGenerator,
		cfg.HTTP.PublicBaseURL, cfg.App.Location(),
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, deviceRepo, documentRepo, photoRepo)
	deviceUC := usecase.NewDeviceUseCase(deviceRepo, warrantyRepo, warrantyUC)
	uploadUC := usecase.NewUploadUseCase(files, cfg.Storage.Bucket, documentRepo, photoRepo)
	catalogUC := usecase.NewCatalogUseCase(productRepo)

	metrics.MustRegister(cfg.App.Name)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:           cfg.App.Name,
		FrontendURL:    cfg.HTTP.FrontendURL,
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gleikstore API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		DeviceUC:       deviceUC,
		WarrantyUC:     warrantyUC,
		UploadUC:       uploadUC,
		CatalogUC:      catalogUC,
		JWTSecret:      cfg.JWT.Secret,
		UploadDir:      cfg.Storage.UploadDir,
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
		AuthRateLimit:  cfg.HTTP.AuthRateLimit,
		ServeUploads:   !cfg.Storage.RemoteEnabled(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
