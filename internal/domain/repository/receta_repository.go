package repository

import "github.com/jmorenoc/ipv-backend/internal/domain/entity"

// RecetaRepository define el puerto de persistencia para Receta y sus
// ingredientes (composición: se crean y eliminan junto con la receta).
type RecetaRepository interface {
	Create(receta *entity.Receta) error
	CreateBatch(recetas []*entity.Receta) error
	GetByID(id string) (*entity.Receta, error)
	// FindByName busca por coincidencia exacta del nombre tal como se almacenó.
	FindByName(nombre string) (*entity.Receta, error)
	// ListAll acepta sortBy ("nombre", "modificado", "recientes") y filterBy
	// ("sin_ingredientes" para recetas con BOM vacío, "" para todas).
	ListAll(sortBy, filterBy string) ([]*entity.Receta, error)
	// Update reemplaza la receta y la totalidad de sus ingredientes.
	Update(receta *entity.Receta) error
	Delete(id string) error
}
