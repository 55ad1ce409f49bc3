package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/domain"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

// AreaUseCase casos de uso CRUD para áreas del restaurante.
type AreaUseCase struct {
	repo repository.AreaRepository
}

// NewAreaUseCase construye el caso de uso.
func NewAreaUseCase(repo repository.AreaRepository) *AreaUseCase {
	return &AreaUseCase{repo: repo}
}

// Create crea un área con nombre normalizado a mayúsculas.
func (uc *AreaUseCase) Create(in dto.CreateAreaRequest) (*dto.AreaResponse, error) {
	nombre := strings.ToUpper(strings.TrimSpace(in.Nombre))
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if existente, err := uc.repo.FindByName(nombre); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrDuplicate
	}

	area := &entity.Area{
		ID:     uuid.New().String(),
		Nombre: nombre,
		Codigo: strings.TrimSpace(in.Codigo),
	}
	if err := uc.repo.Create(area); err != nil {
		return nil, err
	}
	return toAreaResponse(area), nil
}

// GetByID obtiene un área por ID.
func (uc *AreaUseCase) GetByID(id string) (*dto.AreaResponse, error) {
	area, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrNotFound
	}
	return toAreaResponse(area), nil
}

// List lista todas las áreas.
func (uc *AreaUseCase) List() ([]dto.AreaResponse, error) {
	areas, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AreaResponse, 0, len(areas))
	for _, a := range areas {
		items = append(items, *toAreaResponse(a))
	}
	return items, nil
}

// Update actualiza un área.
func (uc *AreaUseCase) Update(id string, in dto.UpdateAreaRequest) (*dto.AreaResponse, error) {
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
	if nombre != actual.Nombre {
		if existente, err := uc.repo.FindByName(nombre); err != nil {
			return nil, err
		} else if existente != nil && existente.ID != id {
			return nil, domain.ErrDuplicate
		}
	}

	actualizada := &entity.Area{ID: id, Nombre: nombre, Codigo: strings.TrimSpace(in.Codigo)}
	if err := uc.repo.Update(actualizada); err != nil {
		return nil, err
	}
	return toAreaResponse(actualizada), nil
}

// Delete elimina un área si ninguna tabla dependiente la referencia.
func (uc *AreaUseCase) Delete(id string) error {
	area, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if area == nil {
		return domain.ErrNotFound
	}
	enUso, err := uc.repo.InUse(id)
	if err != nil {
		return err
	}
	if enUso {
		return domain.ErrEnUso
	}
	return uc.repo.Delete(id)
}

func toAreaResponse(a *entity.Area) *dto.AreaResponse {
	return &dto.AreaResponse{ID: a.ID, Nombre: a.Nombre, Codigo: a.Codigo}
}
