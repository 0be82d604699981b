package dto

type CreateConsultorioRequest struct {
	IDConsultorio int    `json:"id_consultorio" validate:"omitempty,gte=0"`
	Numero        string `json:"numero" validate:"required,max=50"`
	Ubicacion     string `json:"ubicacion" validate:"required,max=255"`
	CentroMedico  *int   `json:"centro_medico"`
}

type UpdateConsultorioRequest struct {
	Numero       string `json:"numero" validate:"required,max=50"`
	Ubicacion    string `json:"ubicacion" validate:"required,max=255"`
	CentroMedico *int   `json:"centro_medico"`
}
