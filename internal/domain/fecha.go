package domain

import "time"

// FechaLayout formato de fecha de la API y de los registros de IPV.
const FechaLayout = "2006-01-02"

// ParseFecha interpreta una fecha YYYY-MM-DD. Una cadena malformada es un
// error de validación, no de infraestructura.
func ParseFecha(s string) (time.Time, error) {
	t, err := time.Parse(FechaLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return t, nil
}
