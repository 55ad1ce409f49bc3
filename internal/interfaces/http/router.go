package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmorenoc/ipv-backend/internal/application/excel"
	"github.com/jmorenoc/ipv-backend/internal/application/ipv"
	"github.com/jmorenoc/ipv-backend/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC  *usecase.ProductoUseCase
	AreaUC      *usecase.AreaUseCase
	RecetaUC    *usecase.RecetaUseCase
	VentaUC     *usecase.VentaUseCase
	HistorialUC *usecase.HistorialUseCase

	ProductosExcel *excel.ProductosExcelUseCase
	RecetasExcel   *excel.RecetasExcelUseCase
	VentasExcel    *excel.VentasExcelUseCase

	Estado     *ipv.EstadoUseCase
	Consumo    *ipv.ConsumoUseCase
	Guardar    *ipv.GuardarUseCase
	Modelo     *ipv.ModeloUseCase
	Reporte    *ipv.ReporteUseCase
	ReportePDF *ipv.ReportePDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC, deps.ProductosExcel)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/exportar", productoHandler.Export)
	productos.Post("/importar", productoHandler.Import)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Áreas
	areas := api.Group("/areas")
	areaHandler := NewAreaHandler(deps.AreaUC)
	areas.Post("/", areaHandler.Create)
	areas.Get("/", areaHandler.List)
	areas.Get("/:id", areaHandler.GetByID)
	areas.Put("/:id", areaHandler.Update)
	areas.Delete("/:id", areaHandler.Delete)

	// Recetas
	recetas := api.Group("/recetas")
	recetaHandler := NewRecetaHandler(deps.RecetaUC, deps.RecetasExcel)
	recetas.Post("/", recetaHandler.Create)
	recetas.Get("/", recetaHandler.List)
	recetas.Get("/exportar", recetaHandler.Export)
	recetas.Post("/importar", recetaHandler.Import)
	recetas.Get("/:id", recetaHandler.GetByID)
	recetas.Put("/:id", recetaHandler.Update)
	recetas.Delete("/:id", recetaHandler.Delete)

	// Ventas
	ventas := api.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC, deps.VentasExcel)
	ventas.Post("/", ventaHandler.Create)
	ventas.Get("/", ventaHandler.List)
	ventas.Post("/importar", ventaHandler.Import)
	ventas.Post("/eliminar-multiples", ventaHandler.DeleteBatch)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Put("/:id", ventaHandler.Update)
	ventas.Delete("/:id", ventaHandler.Delete)

	// IPV: ciclo diario
	ipvGroup := api.Group("/ipv")
	ipvHandler := NewIPVHandler(deps.Estado, deps.Consumo, deps.Guardar, deps.Modelo, deps.Reporte, deps.ReportePDF)
	ipvGroup.Get("/estado", ipvHandler.Estado)
	ipvGroup.Get("/consumo", ipvHandler.Consumo)
	ipvGroup.Post("/guardar", ipvHandler.Guardar)
	ipvGroup.Get("/modelos", ipvHandler.GetModelos)
	ipvGroup.Post("/modelos", ipvHandler.SaveModelo)
	ipvGroup.Get("/registros", ipvHandler.Registros)
	ipvGroup.Get("/reporte", ipvHandler.Reporte)
	ipvGroup.Get("/reporte/pdf", ipvHandler.ReportePDF)

	// Historial de cambios
	historial := api.Group("/historial")
	historialHandler := NewHistorialHandler(deps.HistorialUC)
	historial.Get("/:tipo", historialHandler.ListByEntityType)
}
