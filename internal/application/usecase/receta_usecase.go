package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/domain"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

// RecetaUseCase casos de uso CRUD para recetas y su BOM. Los ingredientes son
// composición: se reemplazan completos al actualizar y mueren con la receta.
type RecetaUseCase struct {
	repo      repository.RecetaRepository
	historial *HistorialUseCase
}

// NewRecetaUseCase construye el caso de uso.
func NewRecetaUseCase(repo repository.RecetaRepository, historial *HistorialUseCase) *RecetaUseCase {
	return &RecetaUseCase{repo: repo, historial: historial}
}

// Create crea una receta con sus ingredientes, evitando duplicados por nombre.
func (uc *RecetaUseCase) Create(in dto.CreateRecetaRequest) (*dto.RecetaResponse, error) {
	nombre := strings.ToUpper(strings.TrimSpace(in.Nombre))
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if existente, err := uc.repo.FindByName(nombre); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrDuplicate
	}

	receta := buildReceta(uuid.New().String(), nombre, in.Activa, in.Ingredientes)
	if err := uc.repo.Create(receta); err != nil {
		return nil, err
	}
	if err := uc.historial.RegistrarCambio("Receta", receta.ID, "Creación", "",
		fmt.Sprintf("Receta '%s' creada", receta.Nombre)); err != nil {
		return nil, err
	}
	return toRecetaResponse(receta), nil
}

// GetByID obtiene una receta con su BOM.
func (uc *RecetaUseCase) GetByID(id string) (*dto.RecetaResponse, error) {
	receta, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receta == nil {
		return nil, domain.ErrNotFound
	}
	return toRecetaResponse(receta), nil
}

// List lista recetas. sortBy: nombre, modificado, recientes.
// filterBy: "sin_ingredientes" restringe a recetas con BOM vacío.
func (uc *RecetaUseCase) List(sortBy, filterBy string) ([]dto.RecetaResponse, error) {
	if sortBy == "" {
		sortBy = "nombre"
	}
	recetas, err := uc.repo.ListAll(sortBy, filterBy)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecetaResponse, 0, len(recetas))
	for _, r := range recetas {
		items = append(items, *toRecetaResponse(r))
	}
	return items, nil
}

// Update actualiza la receta reemplazando por completo sus ingredientes.
func (uc *RecetaUseCase) Update(id string, in dto.UpdateRecetaRequest) (*dto.RecetaResponse, error) {
	actual, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if actual == nil {
		return nil, domain.ErrNotFound
	}

	nombre := strings.ToUpper(strings.TrimSpace(in.Nombre))
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	actualizada := buildReceta(id, nombre, in.Activa, in.Ingredientes)

	if actual.Nombre != actualizada.Nombre {
		if err := uc.historial.RegistrarCambio("Receta", id, "nombre", actual.Nombre, actualizada.Nombre); err != nil {
			return nil, err
		}
	}
	if len(actual.Ingredientes) != len(actualizada.Ingredientes) {
		if err := uc.historial.RegistrarCambio("Receta", id, "ingredientes",
			fmt.Sprintf("Receta '%s' tenía %d ingredientes", actual.Nombre, len(actual.Ingredientes)),
			fmt.Sprintf("Receta '%s' ahora tiene %d ingredientes", actualizada.Nombre, len(actualizada.Ingredientes)),
		); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(actualizada); err != nil {
		return nil, err
	}
	return toRecetaResponse(actualizada), nil
}

// Delete elimina una receta y, por composición, sus ingredientes.
func (uc *RecetaUseCase) Delete(id string) error {
	receta, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if receta == nil {
		return domain.ErrNotFound
	}
	if err := uc.historial.RegistrarCambio("Receta", id, "Eliminación",
		fmt.Sprintf("Receta '%s' eliminada", receta.Nombre), ""); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// Import importa recetas en masa omitiendo las que ya existen por nombre.
func (uc *RecetaUseCase) Import(entradas []dto.CreateRecetaRequest) (*dto.ImportRecetasResult, error) {
	res := &dto.ImportRecetasResult{}
	for _, in := range entradas {
		nombre := strings.ToUpper(strings.TrimSpace(in.Nombre))
		if nombre == "" {
			res.Omitidas++
			continue
		}
		existente, err := uc.repo.FindByName(nombre)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			res.Omitidas++
			continue
		}
		receta := buildReceta(uuid.New().String(), nombre, in.Activa, in.Ingredientes)
		if err := uc.repo.Create(receta); err != nil {
			return nil, err
		}
		res.Importadas++
	}
	return res, nil
}

func buildReceta(id, nombre string, activa *bool, ingredientes []dto.IngredienteRequest) *entity.Receta {
	receta := &entity.Receta{ID: id, Nombre: nombre, Activa: true}
	if activa != nil {
		receta.Activa = *activa
	}
	for _, ing := range ingredientes {
		receta.Ingredientes = append(receta.Ingredientes, entity.Ingrediente{
			ID:         uuid.New().String(),
			RecetaID:   id,
			ProductoID: ing.ProductoID,
			AreaID:     ing.AreaID,
			Cantidad:   ing.Cantidad,
		})
	}
	return receta
}

func toRecetaResponse(r *entity.Receta) *dto.RecetaResponse {
	out := &dto.RecetaResponse{
		ID:           r.ID,
		Nombre:       r.Nombre,
		Activa:       r.Activa,
		Ingredientes: make([]dto.IngredienteResponse, 0, len(r.Ingredientes)),
	}
	for _, ing := range r.Ingredientes {
		out.Ingredientes = append(out.Ingredientes, dto.IngredienteResponse{
			ID:         ing.ID,
			ProductoID: ing.ProductoID,
			AreaID:     ing.AreaID,
			Cantidad:   ing.Cantidad,
		})
	}
	return out
}
