package ipv

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

// ClaveConsumo identifica un balde de consumo: el mismo producto descontado
// desde dos áreas produce dos baldes independientes.
type ClaveConsumo struct {
	ProductoID string
	AreaID     string
}

// String devuelve la llave en el formato de intercambio "producto_id|area_id".
func (c ClaveConsumo) String() string {
	return c.ProductoID + "|" + c.AreaID
}

// ConsumoUseCase explota las ventas de una fecha a consumo teórico por
// (producto, área) usando las cantidades de los ingredientes de cada receta.
type ConsumoUseCase struct {
	ventas  repository.VentaRepository
	recetas repository.RecetaRepository
}

// NewConsumoUseCase construye el caso de uso.
func NewConsumoUseCase(ventas repository.VentaRepository, recetas repository.RecetaRepository) *ConsumoUseCase {
	return &ConsumoUseCase{ventas: ventas, recetas: recetas}
}

// Execute calcula el consumo total de la fecha. La búsqueda de receta es por
// nombre exacto tal como se almacenó; una venta cuya receta no existe, o una
// receta sin ingredientes, no aporta nada y no es un error: las ventas
// importadas pueden arrastrar nombres retirados o mal escritos.
func (uc *ConsumoUseCase) Execute(fecha time.Time) (map[ClaveConsumo]decimal.Decimal, error) {
	ventas, err := uc.ventas.FindByDate(fecha)
	if err != nil {
		return nil, err
	}

	consumo := make(map[ClaveConsumo]decimal.Decimal)
	for _, venta := range ventas {
		receta, err := uc.recetas.FindByName(venta.RecetaNombre)
		if err != nil {
			return nil, err
		}
		if receta == nil {
			continue
		}
		cantidadVendida := decimal.NewFromInt(int64(venta.Cantidad))
		for _, ing := range receta.Ingredientes {
			clave := ClaveConsumo{ProductoID: ing.ProductoID, AreaID: ing.AreaID}
			consumo[clave] = consumo[clave].Add(cantidadVendida.Mul(ing.Cantidad))
		}
	}
	return consumo, nil
}
