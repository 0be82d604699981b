package dto

type CreateCentroRequest struct {
	IDCentroMedico int    `json:"id_centro_medico" validate:"omitempty,gte=0"`
	Nombre         string `json:"nombre" validate:"required,max=100"`
	Direccion      string `json:"direccion" validate:"required,max=255"`
	Telefono       string `json:"telefono" validate:"omitempty,max=50"`
	Email          string `json:"email" validate:"omitempty,email"`
	Sede           string `json:"sede" validate:"omitempty,max=50"`
}

type UpdateCentroRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=100"`
	Direccion string `json:"direccion" validate:"required,max=255"`
	Telefono  string `json:"telefono" validate:"omitempty,max=50"`
	Email     string `json:"email" validate:"omitempty,email"`
	Sede      string `json:"sede" validate:"omitempty,max=50"`
}
