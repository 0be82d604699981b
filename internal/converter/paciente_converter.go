package converter

import (
	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/internal/domain/entity"
)

func CreatePacienteToEntity(req *dto.CreatePacienteRequest) (*entity.Paciente, error) {
	fecha, err := parseFecha(req.FechaNacimiento)
	if err != nil {
		return nil, err
	}
	return &entity.Paciente{
		IDPaciente:      req.IDPaciente,
		Cedula:          req.Cedula,
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		FechaNacimiento: fecha,
		Genero:          req.Genero,
	}, nil
}

func UpdatePacienteToEntity(req *dto.UpdatePacienteRequest) (*entity.Paciente, error) {
	fecha, err := parseFecha(req.FechaNacimiento)
	if err != nil {
		return nil, err
	}
	return &entity.Paciente{
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		FechaNacimiento: fecha,
		Genero:          req.Genero,
	}, nil
}
