package ipv_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests del ciclo IPV. Implementan los
// puertos de dominio sobre slices y maps; suficiente para ejercitar la lógica
// de los casos de uso sin PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memProductos struct {
	items []*entity.Producto
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
func (m *memProductos) Update(*entity.Producto) error              { return nil }
func (m *memProductos) Delete(string) error                        { return nil }
func (m *memProductos) InUse(string) (bool, error)                 { return false, nil }

type memAreas struct {
	items []*entity.Area
}

func (m *memAreas) Create(a *entity.Area) error { m.items = append(m.items, a); return nil }
func (m *memAreas) GetByID(id string) (*entity.Area, error) {
	for _, a := range m.items {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}
func (m *memAreas) FindByName(nombre string) (*entity.Area, error) {
	for _, a := range m.items {
		if a.Nombre == nombre {
			return a, nil
		}
	}
	return nil, nil
}
func (m *memAreas) ListAll() ([]*entity.Area, error) { return m.items, nil }
func (m *memAreas) Update(*entity.Area) error        { return nil }
func (m *memAreas) Delete(string) error              { return nil }
func (m *memAreas) InUse(string) (bool, error)       { return false, nil }

type memRecetas struct {
	items []*entity.Receta
}

func (m *memRecetas) Create(r *entity.Receta) error { m.items = append(m.items, r); return nil }
func (m *memRecetas) CreateBatch(rs []*entity.Receta) error {
	m.items = append(m.items, rs...)
	return nil
}
func (m *memRecetas) GetByID(id string) (*entity.Receta, error) {
	for _, r := range m.items {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}
func (m *memRecetas) FindByName(nombre string) (*entity.Receta, error) {
	for _, r := range m.items {
		if r.Nombre == nombre {
			return r, nil
		}
	}
	return nil, nil
}
func (m *memRecetas) ListAll(string, string) ([]*entity.Receta, error) { return m.items, nil }
func (m *memRecetas) Update(*entity.Receta) error                      { return nil }
func (m *memRecetas) Delete(string) error                              { return nil }

type memVentas struct {
	items []*entity.Venta
}

func (m *memVentas) Create(v *entity.Venta) error { m.items = append(m.items, v); return nil }
func (m *memVentas) CreateBatch(vs []*entity.Venta) error {
	m.items = append(m.items, vs...)
	return nil
}
func (m *memVentas) GetByID(id string) (*entity.Venta, error) {
	for _, v := range m.items {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}
func (m *memVentas) ListAll() ([]*entity.Venta, error) { return m.items, nil }
func (m *memVentas) FindByDate(fecha time.Time) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range m.items {
		if v.Fecha.Equal(fecha) {
			out = append(out, v)
		}
	}
	return out, nil
}
func (m *memVentas) Update(*entity.Venta) error     { return nil }
func (m *memVentas) Delete(string) error            { return nil }
func (m *memVentas) DeleteBatch([]string) error     { return nil }

// memInventario indexa los registros por fecha (YYYY-MM-DD) y el modelo por
// area_id, igual que las llaves reales en la base.
type memInventario struct {
	registros map[string][]*entity.InventarioDiario
	modelos   map[string][]entity.ModeloProducto
}

func newMemInventario() *memInventario {
	return &memInventario{
		registros: make(map[string][]*entity.InventarioDiario),
		modelos:   make(map[string][]entity.ModeloProducto),
	}
}

func claveFecha(f time.Time) string { return f.Format("2006-01-02") }

func (m *memInventario) FindByDate(fecha time.Time) ([]*entity.InventarioDiario, error) {
	return m.registros[claveFecha(fecha)], nil
}

func (m *memInventario) FindAllDates() ([]time.Time, error) {
	var fechas []time.Time
	for clave := range m.registros {
		f, _ := time.Parse("2006-01-02", clave)
		fechas = append(fechas, f)
	}
	return fechas, nil
}

func (m *memInventario) PreviousDayClosing(fecha time.Time, areaID, productoID string) (decimal.Decimal, error) {
	anterior := fecha.AddDate(0, 0, -1)
	for _, reg := range m.registros[claveFecha(anterior)] {
		if reg.AreaID == areaID && reg.ProductoID == productoID {
			return reg.FinalFisico, nil
		}
	}
	return decimal.Zero, nil
}

func (m *memInventario) SaveAll(registros []*entity.InventarioDiario) error {
	for _, reg := range registros {
		clave := claveFecha(reg.Fecha)
		reemplazado := false
		for i, existente := range m.registros[clave] {
			if existente.AreaID == reg.AreaID && existente.ProductoID == reg.ProductoID {
				m.registros[clave][i] = reg
				reemplazado = true
				break
			}
		}
		if !reemplazado {
			m.registros[clave] = append(m.registros[clave], reg)
		}
	}
	return nil
}

func (m *memInventario) GetModelos() (map[string][]entity.ModeloProducto, error) {
	return m.modelos, nil
}

func (m *memInventario) SaveModelo(areaID string, productos []entity.ModeloProducto) error {
	m.modelos[areaID] = productos
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructores de datos de prueba
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func fechaDe(s string) time.Time {
	f, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return f
}
