package ipv

import (
	"time"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
)

// ReportePDFGenerator puerto de renderizado del reporte de IPV a PDF.
type ReportePDFGenerator interface {
	Generate(reporte *dto.ReporteIPV) ([]byte, error)
}

// ReportePDFUseCase compone el agregador de reportes con el generador PDF.
type ReportePDFUseCase struct {
	reporte   *ReporteUseCase
	generator ReportePDFGenerator
}

// NewReportePDFUseCase construye el caso de uso.
func NewReportePDFUseCase(reporte *ReporteUseCase, generator ReportePDFGenerator) *ReportePDFUseCase {
	return &ReportePDFUseCase{reporte: reporte, generator: generator}
}

// Execute genera el PDF del reporte de la fecha. Propaga domain.ErrNotFound
// si la fecha no tiene registros.
func (uc *ReportePDFUseCase) Execute(fecha time.Time) ([]byte, error) {
	reporte, err := uc.reporte.Execute(fecha)
	if err != nil {
		return nil, err
	}
	return uc.generator.Generate(reporte)
}
