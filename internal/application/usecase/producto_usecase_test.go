package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/application/usecase"
	"github.com/jmorenoc/ipv-backend/internal/domain"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductos struct {
	items []*entity.Producto
	enUso map[string]bool
}

func (m *memProductos) Create(p *entity.Producto) error { m.items = append(m.items, p); return nil }
func (m *memProductos) GetByID(id string) (*entity.Producto, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (m *memProductos) FindByName(nombre string) (*entity.Producto, error) {
	for _, p := range m.items {
		if p.Nombre == nombre {
			return p, nil
		}
	}
	return nil, nil
}
func (m *memProductos) ListAll(string) ([]*entity.Producto, error) { return m.items, nil }
func (m *memProductos) Update(p *entity.Producto) error {
	for i, existente := range m.items {
		if existente.ID == p.ID {
			m.items[i] = p
		}
	}
	return nil
}
func (m *memProductos) Delete(id string) error {
	for i, p := range m.items {
		if p.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}
func (m *memProductos) InUse(id string) (bool, error) { return m.enUso[id], nil }

type memHistorial struct {
	items []*entity.HistorialCambio
}

func (m *memHistorial) Record(c *entity.HistorialCambio) error {
	m.items = append(m.items, c)
	return nil
}
func (m *memHistorial) ListByEntityType(tipo string) ([]*entity.HistorialCambio, error) {
	var out []*entity.HistorialCambio
	for _, c := range m.items {
		if c.EntidadTipo == tipo {
			out = append(out, c)
		}
	}
	return out, nil
}

func nuevoProductoUC() (*usecase.ProductoUseCase, *memProductos, *memHistorial) {
	repo := &memProductos{enUso: make(map[string]bool)}
	historial := &memHistorial{}
	return usecase.NewProductoUseCase(repo, usecase.NewHistorialUseCase(historial)), repo, historial
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// TestProductoCreate_NormalizaYAudita el nombre y la unidad se guardan en
// mayúsculas y la creación queda en el historial.
func TestProductoCreate_NormalizaYAudita(t *testing.T) {
	uc, _, historial := nuevoProductoUC()

	out, err := uc.Create(dto.CreateProductoRequest{Nombre: "  tomate ", UnidadMedida: "kg"})
	require.NoError(t, err)
	assert.Equal(t, "TOMATE", out.Nombre)
	assert.Equal(t, "KG", out.UnidadMedida)
	assert.NotEmpty(t, out.ID)

	require.Len(t, historial.items, 1)
	assert.Equal(t, "Producto", historial.items[0].EntidadTipo)
	assert.Equal(t, "Creación", historial.items[0].CampoModificado)
}

// TestProductoCreate_DuplicadoInsensibleAMayusculas "tomate" y "TOMATE"
// chocan porque ambos se normalizan antes de buscar.
func TestProductoCreate_DuplicadoInsensibleAMayusculas(t *testing.T) {
	uc, _, _ := nuevoProductoUC()

	_, err := uc.Create(dto.CreateProductoRequest{Nombre: "TOMATE", UnidadMedida: "KG"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductoRequest{Nombre: "tomate", UnidadMedida: "kg"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// TestProductoCreate_CamposRequeridos nombre y unidad en blanco se rechazan.
func TestProductoCreate_CamposRequeridos(t *testing.T) {
	uc, _, _ := nuevoProductoUC()

	_, err := uc.Create(dto.CreateProductoRequest{Nombre: "  ", UnidadMedida: "KG"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductoRequest{Nombre: "TOMATE", UnidadMedida: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestProductoUpdate_AuditaPorCampo cada campo que cambia produce su propia
// entrada de historial con valor anterior y nuevo.
func TestProductoUpdate_AuditaPorCampo(t *testing.T) {
	uc, _, historial := nuevoProductoUC()
	creado, err := uc.Create(dto.CreateProductoRequest{Nombre: "TOMATE", UnidadMedida: "KG"})
	require.NoError(t, err)

	_, err = uc.Update(creado.ID, dto.UpdateProductoRequest{Nombre: "TOMATE CHERRY", UnidadMedida: "UND"})
	require.NoError(t, err)

	// 1 de creación + 2 de campos modificados.
	require.Len(t, historial.items, 3)
	assert.Equal(t, "nombre", historial.items[1].CampoModificado)
	assert.Equal(t, "TOMATE", historial.items[1].ValorAnterior)
	assert.Equal(t, "TOMATE CHERRY", historial.items[1].ValorNuevo)
	assert.Equal(t, "unidad_medida", historial.items[2].CampoModificado)
}

// TestProductoDelete_BloqueadoSiEnUso un producto referenciado no puede
// eliminarse; el historial no registra nada.
func TestProductoDelete_BloqueadoSiEnUso(t *testing.T) {
	uc, repo, historial := nuevoProductoUC()
	creado, err := uc.Create(dto.CreateProductoRequest{Nombre: "TOMATE", UnidadMedida: "KG"})
	require.NoError(t, err)
	repo.enUso[creado.ID] = true

	err = uc.Delete(creado.ID)
	assert.ErrorIs(t, err, domain.ErrEnUso)
	assert.Len(t, historial.items, 1, "solo la entrada de creación")
	assert.Len(t, repo.items, 1, "el producto sigue existiendo")
}

// TestProductoDelete_LibreSeEliminaYAudita
func TestProductoDelete_LibreSeEliminaYAudita(t *testing.T) {
	uc, repo, historial := nuevoProductoUC()
	creado, err := uc.Create(dto.CreateProductoRequest{Nombre: "TOMATE", UnidadMedida: "KG"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(creado.ID))
	assert.Empty(t, repo.items)
	require.Len(t, historial.items, 2)
	assert.Equal(t, "Eliminación", historial.items[1].CampoModificado)
}

// TestProductoGetByID_NoExiste
func TestProductoGetByID_NoExiste(t *testing.T) {
	uc, _, _ := nuevoProductoUC()
	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
