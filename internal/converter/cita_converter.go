package converter

import (
	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/internal/domain/entity"
)

func CreateCitaToEntity(req *dto.CreateCitaRequest) (*entity.Cita, error) {
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}
	return &entity.Cita{
		IDCita:        req.IDCita,
		IDConsultorio: req.IDConsultorio,
		IDPaciente:    req.IDPaciente,
		Fecha:         fecha,
		Motivo:        req.Motivo,
	}, nil
}

func UpdateCitaToEntity(req *dto.UpdateCitaRequest) (*entity.Cita, error) {
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}
	return &entity.Cita{
		IDConsultorio: req.IDConsultorio,
		IDPaciente:    req.IDPaciente,
		Fecha:         fecha,
		Motivo:        req.Motivo,
	}, nil
}
