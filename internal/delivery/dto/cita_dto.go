package dto

type CreateCitaRequest struct {
	IDCita        int    `json:"id_cita" validate:"omitempty,gte=0"`
	IDConsultorio int    `json:"id_consultorio" validate:"required"`
	IDPaciente    int    `json:"id_paciente" validate:"required"`
	Fecha         string `json:"fecha" validate:"required"`
	Motivo        string `json:"motivo" validate:"required,max=255"`
	CentroMedico  *int   `json:"centro_medico"`
}

type UpdateCitaRequest struct {
	IDConsultorio int    `json:"id_consultorio" validate:"required"`
	IDPaciente    int    `json:"id_paciente" validate:"required"`
	Fecha         string `json:"fecha" validate:"required"`
	Motivo        string `json:"motivo" validate:"required,max=255"`
	CentroMedico  *int   `json:"centro_medico"`
}
