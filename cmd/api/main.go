package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jmorenoc/ipv-backend/internal/application/excel"
	"github.com/jmorenoc/ipv-backend/internal/application/ipv"
	"github.com/jmorenoc/ipv-backend/internal/application/usecase"
	infrapdf "github.com/jmorenoc/ipv-backend/internal/infrastructure/pdf"
	"github.com/jmorenoc/ipv-backend/internal/infrastructure/postgres"
	httpRouter "github.com/jmorenoc/ipv-backend/internal/interfaces/http"
	"github.com/jmorenoc/ipv-backend/pkg/config"
	"github.com/jmorenoc/ipv-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	areaRepo := postgres.NewAreaRepository(pool)
	recetaRepo := postgres.NewRecetaRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	historialRepo := postgres.NewHistorialRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	historialUC := usecase.NewHistorialUseCase(historialRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, historialUC)
	areaUC := usecase.NewAreaUseCase(areaRepo)
	recetaUC := usecase.NewRecetaUseCase(recetaRepo, historialUC)
	ventaUC := usecase.NewVentaUseCase(ventaRepo)

	productosExcelUC := excel.NewProductosExcelUseCase(productoRepo)
	recetasExcelUC := excel.NewRecetasExcelUseCase(recetaRepo, productoRepo, areaRepo)
	ventasExcelUC := excel.NewVentasExcelUseCase(txRunner, recetaRepo)

	estadoUC := ipv.NewEstadoUseCase(inventarioRepo, productoRepo, areaRepo)
	consumoUC := ipv.NewConsumoUseCase(ventaRepo, recetaRepo)
	guardarUC := ipv.NewGuardarUseCase(inventarioRepo)
	modeloUC := ipv.NewModeloUseCase(inventarioRepo)
	reporteUC := ipv.NewReporteUseCase(inventarioRepo, productoRepo, areaRepo)
	reportePDFUC := ipv.NewReportePDFUseCase(reporteUC, infrapdf.NewMarotoReporteGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // planillas .xlsx grandes
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "IPV API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:     productoUC,
		AreaUC:         areaUC,
		RecetaUC:       recetaUC,
		VentaUC:        ventaUC,
		HistorialUC:    historialUC,
		ProductosExcel: productosExcelUC,
		RecetasExcel:   recetasExcelUC,
		VentasExcel:    ventasExcelUC,
		Estado:         estadoUC,
		Consumo:        consumoUC,
		Guardar:        guardarUC,
		Modelo:         modeloUC,
		Reporte:        reporteUC,
		ReportePDF:     reportePDFUC,
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
