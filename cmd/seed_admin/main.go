// seed_admin crea un usuario ADMIN o promueve uno existente.
//
// Uso: go run ./cmd/seed_admin --email admin@loja.com --password ... --name "Admin" --cpf 000.000.000-00
// Con un email ya registrado solo cambia el rol (y el password si se pasa).
// Los flags vacíos se toman de ADMIN_EMAIL, ADMIN_PASSWORD, ADMIN_NAME y ADMIN_CPF.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/gleikstore/gleikstore-api/internal/application/auth"
	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/infrastructure/postgres"
	"github.com/gleikstore/gleikstore-api/pkg/config"
	"github.com/gleikstore/gleikstore-api/pkg/logger"
)

func main() {
	in := dto.RegisterRequest{}
	flag.StringVar(&in.Email, "email", os.Getenv("ADMIN_EMAIL"), "email del administrador")
	flag.StringVar(&in.Password, "password", os.Getenv("ADMIN_PASSWORD"), "password (obligatorio al crear)")
	flag.StringVar(&in.Name, "name", os.Getenv("ADMIN_NAME"), "nombre (obligatorio al crear)")
	flag.StringVar(&in.CPF, "cpf", os.Getenv("ADMIN_CPF"), "CPF (obligatorio al crear)")
	flag.StringVar(&in.Phone, "phone", "", "teléfono")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "seed_admin"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}

	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	user, created, err := uc.SeedAdmin(ctx, in)
	if err != nil {
		log.Fatal().Err(err).Str("email", in.Email).Msg("no se pudo crear el administrador")
	}

	action := "promovido"
	if created {
		action = "creado"
	}
	log.Info().Str("id", user.ID).Str("email", user.Email).Msg("administrador " + action)
}
