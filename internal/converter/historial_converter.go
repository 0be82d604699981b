package converter

import (
	"time"

	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/internal/domain/entity"
)

func CreateHistorialToEntity(req *dto.CreateHistorialRequest) (*entity.Historial, error) {
	registro := time.Now().UTC()
	if req.FechaRegistro != "" {
		parsed, err := parseFecha(req.FechaRegistro)
		if err != nil {
			return nil, err
		}
		registro = parsed
	}
	return &entity.Historial{
		IDHistorial:   req.IDHistorial,
		IDCita:        req.IDCita,
		Observaciones: req.Observaciones,
		Diagnostico:   req.Diagnostico,
		Tratamiento:   req.Tratamiento,
		FechaRegistro: registro,
	}, nil
}

func UpdateHistorialToEntity(req *dto.UpdateHistorialRequest) *entity.Historial {
	return &entity.Historial{
		Observaciones: req.Observaciones,
		Diagnostico:   req.Diagnostico,
		Tratamiento:   req.Tratamiento,
	}
}
