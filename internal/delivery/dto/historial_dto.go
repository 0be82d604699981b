package dto

type CreateHistorialRequest struct {
	IDHistorial   int    `json:"id_historial" validate:"omitempty,gte=0"`
	IDCita        int    `json:"id_cita" validate:"required"`
	Observaciones string `json:"observaciones" validate:"required,max=255"`
	Diagnostico   string `json:"diagnostico" validate:"required,max=255"`
	Tratamiento   string `json:"tratamiento" validate:"required,max=255"`
	FechaRegistro string `json:"fecha_registro"`
	CentroMedico  *int   `json:"centro_medico"`
}

type UpdateHistorialRequest struct {
	Observaciones string `json:"observaciones" validate:"required,max=255"`
	Diagnostico   string `json:"diagnostico" validate:"required,max=255"`
	Tratamiento   string `json:"tratamiento" validate:"required,max=255"`
	CentroMedico  *int   `json:"centro_medico"`
}
