// import_warranties carga garantías en lote desde un CSV exportado por el sistema de caja.
//
// Uso: go run ./cmd/import_warranties --file garantias.csv [--comma ,] [--charset windows-1252] [--dry-run]
// Cabecera esperada: imei;model;purchaseDate;warrantyEnd (también modelo, data_compra, fim_garantia).
// Cada fila pasa por el mismo upsert que POST /api/admin/warranty, así que los aparelhos
// ya vinculados quedan sincronizados.
package main

import (
	"context"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/gleikstore/gleikstore-api/internal/application/usecase"
	"github.com/gleikstore/gleikstore-api/internal/infrastructure/csvimport"
	infrapdf "github.com/gleikstore/gleikstore-api/internal/infrastructure/pdf"
	"github.com/gleikstore/gleikstore-api/internal/infrastructure/postgres"
	"github.com/gleikstore/gleikstore-api/pkg/config"
	"github.com/gleikstore/gleikstore-api/pkg/logger"
)

func main() {
	path := flag.StringP("file", "f", "garantias.csv", "ruta del CSV")
	comma := flag.String("comma", ";", "separador de columnas")
	charset := flag.String("charset", "utf-8", "codificación: utf-8, latin1 o windows-1252")
	dryRun := flag.Bool("dry-run", false, "solo valida el archivo, no escribe en la DB")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "import_warranties"})

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	opts := csvimport.Options{Charset: *charset}
	if r := []rune(*comma); len(r) == 1 {
		opts.Comma = r[0]
	}
	rows, err := csvimport.ReadWarranties(f, opts)
	if err != nil {
		log.Fatal().Err(err).Str("file", *path).Msg("leer CSV")
	}
	log.Info().Int("rows", len(rows)).Bool("dry_run", *dryRun).Msg("archivo leído")
	if *dryRun {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	warrantyUC := usecase.NewWarrantyUseCase(
		postgres.NewWarrantyRepository(pool), postgres.NewDeviceRepository(pool), postgres.NewTxRunner(pool),
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name), cfg.HTTP.PublicBaseURL, cfg.App.Location(),
	)

	var saved, failed int
	var synced int64
	for _, row := range rows {
		out, err := warrantyUC.Upsert(ctx, row.Request)
		if err != nil {
			failed++
			log.Warn().Err(err).Int("line", row.Line).Str("imei", row.Request.IMEI).Msg("fila rechazada")
			continue
		}
		saved++
		synced += out.DevicesUpdated
	}

	log.Info().
		Int("saved", saved).
		Int("failed", failed).
		Int64("devices_updated", synced).
		Msg("importación terminada")
	if failed > 0 {
		os.Exit(1)
	}
}
